package timesheet

import (
	"context"
	"sync"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc        func(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepointFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
		RunInSavepoint []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx        sync.RWMutex
	lockRunInSavepoint sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

func (mock *txManagerMock) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInSavepointFunc == nil {
		panic("txManagerMock.RunInSavepointFunc: method is nil but txManager.RunInSavepoint was just called")
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

func (mock *txManagerMock) RunInSavepointCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInSavepoint.RLock()
	calls := mock.calls.RunInSavepoint
	mock.lockRunInSavepoint.RUnlock()
	return calls
}
