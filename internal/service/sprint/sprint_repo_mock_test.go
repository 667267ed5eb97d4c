package sprint

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/google/uuid"
)

var _ sprintRepo = &sprintRepoMock{}

type sprintRepoMock struct {
	CreateFunc  func(ctx context.Context, s domain.Sprint) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Sprint, error)
	ListFunc    func(ctx context.Context, projectID *uuid.UUID) ([]domain.Sprint, error)
	UpdateFunc  func(ctx context.Context, s domain.Sprint) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Sprint
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx       context.Context
			ProjectID *uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			S   domain.Sprint
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *sprintRepoMock) Create(ctx context.Context, s domain.Sprint) error {
	if mock.CreateFunc == nil {
		panic("sprintRepoMock.CreateFunc: method is nil but sprintRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Sprint
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sprintRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Sprint
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sprintRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	if mock.GetByIDFunc == nil {
		panic("sprintRepoMock.GetByIDFunc: method is nil but sprintRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sprintRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sprintRepoMock) List(ctx context.Context, projectID *uuid.UUID) ([]domain.Sprint, error) {
	if mock.ListFunc == nil {
		panic("sprintRepoMock.ListFunc: method is nil but sprintRepo.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID *uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, projectID)
}

func (mock *sprintRepoMock) ListCalls() []struct {
	Ctx       context.Context
	ProjectID *uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sprintRepoMock) Update(ctx context.Context, s domain.Sprint) error {
	if mock.UpdateFunc == nil {
		panic("sprintRepoMock.UpdateFunc: method is nil but sprintRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Sprint
	}{Ctx: ctx, S: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *sprintRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   domain.Sprint
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *sprintRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sprintRepoMock.DeleteFunc: method is nil but sprintRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sprintRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
