package task

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ autoLogger = &autoLoggerMock{}

type autoLoggerMock struct {
	AutoLogFunc func(ctx context.Context, taskID uuid.UUID, userID uuid.UUID, minutes int, note string) bool

	calls struct {
		AutoLog []struct {
			Ctx     context.Context
			TaskID  uuid.UUID
			UserID  uuid.UUID
			Minutes int
			Note    string
		}
	}
	lockAutoLog sync.RWMutex
}

func (mock *autoLoggerMock) AutoLog(ctx context.Context, taskID uuid.UUID, userID uuid.UUID, minutes int, note string) bool {
	if mock.AutoLogFunc == nil {
		panic("autoLoggerMock.AutoLogFunc: method is nil but autoLogger.AutoLog was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TaskID  uuid.UUID
		UserID  uuid.UUID
		Minutes int
		Note    string
	}{Ctx: ctx, TaskID: taskID, UserID: userID, Minutes: minutes, Note: note}
	mock.lockAutoLog.Lock()
	mock.calls.AutoLog = append(mock.calls.AutoLog, callInfo)
	mock.lockAutoLog.Unlock()
	return mock.AutoLogFunc(ctx, taskID, userID, minutes, note)
}

func (mock *autoLoggerMock) AutoLogCalls() []struct {
	Ctx     context.Context
	TaskID  uuid.UUID
	UserID  uuid.UUID
	Minutes int
	Note    string
} {
	mock.lockAutoLog.RLock()
	calls := mock.calls.AutoLog
	mock.lockAutoLog.RUnlock()
	return calls
}
