package task

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

var _ authorizer = &authorizerMock{}

type authorizerMock struct {
	ActorFunc     func(ctx context.Context) (domain.Actor, error)
	AuthorizeFunc func(ctx context.Context, c domain.Capability) (domain.Actor, error)

	calls struct {
		Actor []struct {
			Ctx context.Context
		}
		Authorize []struct {
			Ctx context.Context
			C   domain.Capability
		}
	}
	lockActor     sync.RWMutex
	lockAuthorize sync.RWMutex
}

func (mock *authorizerMock) Actor(ctx context.Context) (domain.Actor, error) {
	if mock.ActorFunc == nil {
		panic("authorizerMock.ActorFunc: method is nil but authorizer.Actor was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockActor.Lock()
	mock.calls.Actor = append(mock.calls.Actor, callInfo)
	mock.lockActor.Unlock()
	return mock.ActorFunc(ctx)
}

func (mock *authorizerMock) ActorCalls() []struct {
	Ctx context.Context
} {
	mock.lockActor.RLock()
	calls := mock.calls.Actor
	mock.lockActor.RUnlock()
	return calls
}

func (mock *authorizerMock) Authorize(ctx context.Context, c domain.Capability) (domain.Actor, error) {
	if mock.AuthorizeFunc == nil {
		panic("authorizerMock.AuthorizeFunc: method is nil but authorizer.Authorize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Capability
	}{Ctx: ctx, C: c}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, callInfo)
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, c)
}

func (mock *authorizerMock) AuthorizeCalls() []struct {
	Ctx context.Context
	C   domain.Capability
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}
