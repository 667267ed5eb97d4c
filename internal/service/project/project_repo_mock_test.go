package project

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/google/uuid"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc         func(ctx context.Context, p domain.Project) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListFunc           func(ctx context.Context) ([]domain.Project, error)
	UpdateFunc         func(ctx context.Context, p domain.Project) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	AddMembersFunc     func(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) (int64, error)
	ReplaceMembersFunc func(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error
	SetDocumentFunc    func(ctx context.Context, projectID uuid.UUID, doc domain.Document) error
	DocumentFunc       func(ctx context.Context, projectID uuid.UUID) (*domain.Document, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Project
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			P   domain.Project
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AddMembers []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			UserIDs   []uuid.UUID
		}
		ReplaceMembers []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			UserIDs   []uuid.UUID
		}
		SetDocument []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Doc       domain.Document
		}
		Document []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockAddMembers     sync.RWMutex
	lockReplaceMembers sync.RWMutex
	lockSetDocument    sync.RWMutex
	lockDocument       sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p domain.Project) error {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectRepoMock.GetByIDFunc: method is nil but projectRepo.GetByID was just called")
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

func (mock *projectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *projectRepoMock) List(ctx context.Context) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *projectRepoMock) Update(ctx context.Context, p domain.Project) error {
	if mock.UpdateFunc == nil {
		panic("projectRepoMock.UpdateFunc: method is nil but projectRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Project
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *projectRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   domain.Project
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
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

func (mock *projectRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *projectRepoMock) AddMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	if mock.AddMembersFunc == nil {
		panic("projectRepoMock.AddMembersFunc: method is nil but projectRepo.AddMembers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		UserIDs   []uuid.UUID
	}{Ctx: ctx, ProjectID: projectID, UserIDs: userIDs}
	mock.lockAddMembers.Lock()
	mock.calls.AddMembers = append(mock.calls.AddMembers, callInfo)
	mock.lockAddMembers.Unlock()
	return mock.AddMembersFunc(ctx, projectID, userIDs)
}

func (mock *projectRepoMock) AddMembersCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	UserIDs   []uuid.UUID
} {
	mock.lockAddMembers.RLock()
	calls := mock.calls.AddMembers
	mock.lockAddMembers.RUnlock()
	return calls
}

func (mock *projectRepoMock) ReplaceMembers(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error {
	if mock.ReplaceMembersFunc == nil {
		panic("projectRepoMock.ReplaceMembersFunc: method is nil but projectRepo.ReplaceMembers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		UserIDs   []uuid.UUID
	}{Ctx: ctx, ProjectID: projectID, UserIDs: userIDs}
	mock.lockReplaceMembers.Lock()
	mock.calls.ReplaceMembers = append(mock.calls.ReplaceMembers, callInfo)
	mock.lockReplaceMembers.Unlock()
	return mock.ReplaceMembersFunc(ctx, projectID, userIDs)
}

func (mock *projectRepoMock) ReplaceMembersCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	UserIDs   []uuid.UUID
} {
	mock.lockReplaceMembers.RLock()
	calls := mock.calls.ReplaceMembers
	mock.lockReplaceMembers.RUnlock()
	return calls
}

func (mock *projectRepoMock) SetDocument(ctx context.Context, projectID uuid.UUID, doc domain.Document) error {
	if mock.SetDocumentFunc == nil {
		panic("projectRepoMock.SetDocumentFunc: method is nil but projectRepo.SetDocument was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Doc       domain.Document
	}{Ctx: ctx, ProjectID: projectID, Doc: doc}
	mock.lockSetDocument.Lock()
	mock.calls.SetDocument = append(mock.calls.SetDocument, callInfo)
	mock.lockSetDocument.Unlock()
	return mock.SetDocumentFunc(ctx, projectID, doc)
}

func (mock *projectRepoMock) SetDocumentCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Doc       domain.Document
} {
	mock.lockSetDocument.RLock()
	calls := mock.calls.SetDocument
	mock.lockSetDocument.RUnlock()
	return calls
}

func (mock *projectRepoMock) Document(ctx context.Context, projectID uuid.UUID) (*domain.Document, error) {
	if mock.DocumentFunc == nil {
		panic("projectRepoMock.DocumentFunc: method is nil but projectRepo.Document was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockDocument.Lock()
	mock.calls.Document = append(mock.calls.Document, callInfo)
	mock.lockDocument.Unlock()
	return mock.DocumentFunc(ctx, projectID)
}

func (mock *projectRepoMock) DocumentCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockDocument.RLock()
	calls := mock.calls.Document
	mock.lockDocument.RUnlock()
	return calls
}
