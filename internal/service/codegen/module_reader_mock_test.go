package codegen

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/google/uuid"
)

var _ moduleReader = &moduleReaderMock{}

type moduleReaderMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Module, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *moduleReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Module, error) {
	if mock.GetByIDFunc == nil {
		panic("moduleReaderMock.GetByIDFunc: method is nil but moduleReader.GetByID was just called")
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

func (mock *moduleReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
