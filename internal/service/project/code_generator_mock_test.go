package project

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ codeGenerator = &codeGeneratorMock{}

type codeGeneratorMock struct {
	NextProjectCodeFunc  func(ctx context.Context, name string) (string, int, error)
	NextModuleSerialFunc func(ctx context.Context, projectID uuid.UUID) (int, error)

	calls struct {
		NextProjectCode []struct {
			Ctx  context.Context
			Name string
		}
		NextModuleSerial []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockNextProjectCode  sync.RWMutex
	lockNextModuleSerial sync.RWMutex
}

func (mock *codeGeneratorMock) NextProjectCode(ctx context.Context, name string) (string, int, error) {
	if mock.NextProjectCodeFunc == nil {
		panic("codeGeneratorMock.NextProjectCodeFunc: method is nil but codeGenerator.NextProjectCode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockNextProjectCode.Lock()
	mock.calls.NextProjectCode = append(mock.calls.NextProjectCode, callInfo)
	mock.lockNextProjectCode.Unlock()
	return mock.NextProjectCodeFunc(ctx, name)
}

func (mock *codeGeneratorMock) NextProjectCodeCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockNextProjectCode.RLock()
	calls := mock.calls.NextProjectCode
	mock.lockNextProjectCode.RUnlock()
	return calls
}

func (mock *codeGeneratorMock) NextModuleSerial(ctx context.Context, projectID uuid.UUID) (int, error) {
	if mock.NextModuleSerialFunc == nil {
		panic("codeGeneratorMock.NextModuleSerialFunc: method is nil but codeGenerator.NextModuleSerial was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockNextModuleSerial.Lock()
	mock.calls.NextModuleSerial = append(mock.calls.NextModuleSerial, callInfo)
	mock.lockNextModuleSerial.Unlock()
	return mock.NextModuleSerialFunc(ctx, projectID)
}

func (mock *codeGeneratorMock) NextModuleSerialCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockNextModuleSerial.RLock()
	calls := mock.calls.NextModuleSerial
	mock.lockNextModuleSerial.RUnlock()
	return calls
}
