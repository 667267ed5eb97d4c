package task

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/service/codegen"
)

var _ codeGenerator = &codeGeneratorMock{}

type codeGeneratorMock struct {
	NextTaskCodeFunc func(ctx context.Context, req codegen.TaskCodeRequest) (string, int, error)

	calls struct {
		NextTaskCode []struct {
			Ctx context.Context
			Req codegen.TaskCodeRequest
		}
	}
	lockNextTaskCode sync.RWMutex
}

func (mock *codeGeneratorMock) NextTaskCode(ctx context.Context, req codegen.TaskCodeRequest) (string, int, error) {
	if mock.NextTaskCodeFunc == nil {
		panic("codeGeneratorMock.NextTaskCodeFunc: method is nil but codeGenerator.NextTaskCode was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req codegen.TaskCodeRequest
	}{Ctx: ctx, Req: req}
	mock.lockNextTaskCode.Lock()
	mock.calls.NextTaskCode = append(mock.calls.NextTaskCode, callInfo)
	mock.lockNextTaskCode.Unlock()
	return mock.NextTaskCodeFunc(ctx, req)
}

func (mock *codeGeneratorMock) NextTaskCodeCalls() []struct {
	Ctx context.Context
	Req codegen.TaskCodeRequest
} {
	mock.lockNextTaskCode.RLock()
	calls := mock.calls.NextTaskCode
	mock.lockNextTaskCode.RUnlock()
	return calls
}
