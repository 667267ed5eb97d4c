package changelog

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/google/uuid"
)

var _ lister = &listerMock{}

type listerMock struct {
	ListFunc            func(ctx context.Context, f domain.ChangeLogFilter) ([]domain.ChangeLog, error)
	ProjectActivityFunc func(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.ChangeLog, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.ChangeLogFilter
		}
		ProjectActivity []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
			Limit     int
		}
	}
	lockList            sync.RWMutex
	lockProjectActivity sync.RWMutex
}

func (mock *listerMock) List(ctx context.Context, f domain.ChangeLogFilter) ([]domain.ChangeLog, error) {
	if mock.ListFunc == nil {
		panic("listerMock.ListFunc: method is nil but lister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ChangeLogFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *listerMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ChangeLogFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *listerMock) ProjectActivity(ctx context.Context, projectID uuid.UUID, limit int) ([]domain.ChangeLog, error) {
	if mock.ProjectActivityFunc == nil {
		panic("listerMock.ProjectActivityFunc: method is nil but lister.ProjectActivity was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
		Limit     int
	}{Ctx: ctx, ProjectID: projectID, Limit: limit}
	mock.lockProjectActivity.Lock()
	mock.calls.ProjectActivity = append(mock.calls.ProjectActivity, callInfo)
	mock.lockProjectActivity.Unlock()
	return mock.ProjectActivityFunc(ctx, projectID, limit)
}

func (mock *listerMock) ProjectActivityCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
	Limit     int
} {
	mock.lockProjectActivity.RLock()
	calls := mock.calls.ProjectActivity
	mock.lockProjectActivity.RUnlock()
	return calls
}
