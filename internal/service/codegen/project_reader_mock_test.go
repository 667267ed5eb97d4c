package codegen

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/google/uuid"
)

var _ projectReader = &projectReaderMock{}

type projectReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *projectReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetByIDFunc == nil {
		panic("projectReaderMock.GetByIDFunc: method is nil but projectReader.GetByID was just called")
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

func (mock *projectReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
