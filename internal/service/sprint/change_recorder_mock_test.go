package sprint

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/service/changelog"
)

var _ changeRecorder = &changeRecorderMock{}

type changeRecorderMock struct {
	TryRecordFunc func(ctx context.Context, e changelog.Entry) changelog.Outcome

	calls struct {
		TryRecord []struct {
			Ctx context.Context
			E   changelog.Entry
		}
	}
	lockTryRecord sync.RWMutex
}

func (mock *changeRecorderMock) TryRecord(ctx context.Context, e changelog.Entry) changelog.Outcome {
	if mock.TryRecordFunc == nil {
		panic("changeRecorderMock.TryRecordFunc: method is nil but changeRecorder.TryRecord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   changelog.Entry
	}{Ctx: ctx, E: e}
	mock.lockTryRecord.Lock()
	mock.calls.TryRecord = append(mock.calls.TryRecord, callInfo)
	mock.lockTryRecord.Unlock()
	return mock.TryRecordFunc(ctx, e)
}

func (mock *changeRecorderMock) TryRecordCalls() []struct {
	Ctx context.Context
	E   changelog.Entry
} {
	mock.lockTryRecord.RLock()
	calls := mock.calls.TryRecord
	mock.lockTryRecord.RUnlock()
	return calls
}
