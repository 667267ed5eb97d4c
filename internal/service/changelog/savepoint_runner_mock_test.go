package changelog

import (
	"context"
	"sync"
)

var _ savepointRunner = &savepointRunnerMock{}

type savepointRunnerMock struct {
	RunInSavepointFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInSavepoint []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInSavepoint sync.RWMutex
}

func (mock *savepointRunnerMock) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInSavepointFunc == nil {
		panic("savepointRunnerMock.RunInSavepointFunc: method is nil but savepointRunner.RunInSavepoint was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInSavepoint.Lock()
	mock.calls.RunInSavepoint = append(mock.calls.RunInSavepoint, callInfo)
	mock.lockRunInSavepoint.Unlock()
	return mock.RunInSavepointFunc(ctx, fn)
}

func (mock *savepointRunnerMock) RunInSavepointCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInSavepoint.RLock()
	calls := mock.calls.RunInSavepoint
	mock.lockRunInSavepoint.RUnlock()
	return calls
}
