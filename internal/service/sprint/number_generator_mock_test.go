package sprint

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ numberGenerator = &numberGeneratorMock{}

type numberGeneratorMock struct {
	NextSprintNumberFunc func(ctx context.Context, projectID uuid.UUID) (int, error)

	calls struct {
		NextSprintNumber []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockNextSprintNumber sync.RWMutex
}

func (mock *numberGeneratorMock) NextSprintNumber(ctx context.Context, projectID uuid.UUID) (int, error) {
	if mock.NextSprintNumberFunc == nil {
		panic("numberGeneratorMock.NextSprintNumberFunc: method is nil but numberGenerator.NextSprintNumber was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockNextSprintNumber.Lock()
	mock.calls.NextSprintNumber = append(mock.calls.NextSprintNumber, callInfo)
	mock.lockNextSprintNumber.Unlock()
	return mock.NextSprintNumberFunc(ctx, projectID)
}

func (mock *numberGeneratorMock) NextSprintNumberCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockNextSprintNumber.RLock()
	calls := mock.calls.NextSprintNumber
	mock.lockNextSprintNumber.RUnlock()
	return calls
}
