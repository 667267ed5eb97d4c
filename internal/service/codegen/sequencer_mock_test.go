package codegen

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

var _ sequencer = &sequencerMock{}

type sequencerMock struct {
	NextFunc func(ctx context.Context, scope domain.SequenceScope, key string) (int64, error)

	calls struct {
		Next []struct {
			Ctx   context.Context
			Scope domain.SequenceScope
			Key   string
		}
	}
	lockNext sync.RWMutex
}

func (mock *sequencerMock) Next(ctx context.Context, scope domain.SequenceScope, key string) (int64, error) {
	if mock.NextFunc == nil {
		panic("sequencerMock.NextFunc: method is nil but sequencer.Next was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope domain.SequenceScope
		Key   string
	}{Ctx: ctx, Scope: scope, Key: key}
	mock.lockNext.Lock()
	mock.calls.Next = append(mock.calls.Next, callInfo)
	mock.lockNext.Unlock()
	return mock.NextFunc(ctx, scope, key)
}

func (mock *sequencerMock) NextCalls() []struct {
	Ctx   context.Context
	Scope domain.SequenceScope
	Key   string
} {
	mock.lockNext.RLock()
	calls := mock.calls.Next
	mock.lockNext.RUnlock()
	return calls
}
