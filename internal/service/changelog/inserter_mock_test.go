package changelog

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

var _ inserter = &inserterMock{}

type inserterMock struct {
	InsertFunc func(ctx context.Context, rec domain.ChangeLog) (domain.ChangeLog, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			Rec domain.ChangeLog
		}
	}
	lockInsert sync.RWMutex
}

func (mock *inserterMock) Insert(ctx context.Context, rec domain.ChangeLog) (domain.ChangeLog, error) {
	if mock.InsertFunc == nil {
		panic("inserterMock.InsertFunc: method is nil but inserter.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.ChangeLog
	}{Ctx: ctx, Rec: rec}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, rec)
}

func (mock *inserterMock) InsertCalls() []struct {
	Ctx context.Context
	Rec domain.ChangeLog
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
