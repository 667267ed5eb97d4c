package rest

import (
	"context"
	"sync"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
	"github.com/BhaveshChowdary07/ptas-api/internal/service/project"
	"github.com/google/uuid"
)

var _ projectService = &projectServiceMock{}

type projectServiceMock struct {
	CreateFunc         func(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error)
	GetFunc            func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListFunc           func(ctx context.Context) ([]domain.Project, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*domain.Project, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	AttachDocumentFunc func(ctx context.Context, id uuid.UUID, doc domain.Document) (*domain.Project, error)
	DocumentFunc       func(ctx context.Context, id uuid.UUID) (*domain.Document, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input project.CreateProjectInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input project.UpdateProjectInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AttachDocument []struct {
			Ctx context.Context
			ID  uuid.UUID
			Doc domain.Document
		}
		Document []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGet            sync.RWMutex
	lockList           sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockAttachDocument sync.RWMutex
	lockDocument       sync.RWMutex
}

func (mock *projectServiceMock) Create(ctx context.Context, input project.CreateProjectInput) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectServiceMock.CreateFunc: method is nil but projectService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input project.CreateProjectInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *projectServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input project.CreateProjectInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if mock.GetFunc == nil {
		panic("projectServiceMock.GetFunc: method is nil but projectService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *projectServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *projectServiceMock) List(ctx context.Context) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectServiceMock.ListFunc: method is nil but projectService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *projectServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *projectServiceMock) Update(ctx context.Context, id uuid.UUID, input project.UpdateProjectInput) (*domain.Project, error) {
	if mock.UpdateFunc == nil {
		panic("projectServiceMock.UpdateFunc: method is nil but projectService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input project.UpdateProjectInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *projectServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input project.UpdateProjectInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *projectServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectServiceMock.DeleteFunc: method is nil but projectService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *projectServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *projectServiceMock) AttachDocument(ctx context.Context, id uuid.UUID, doc domain.Document) (*domain.Project, error) {
	if mock.AttachDocumentFunc == nil {
		panic("projectServiceMock.AttachDocumentFunc: method is nil but projectService.AttachDocument was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Doc domain.Document
	}{Ctx: ctx, ID: id, Doc: doc}
	mock.lockAttachDocument.Lock()
	mock.calls.AttachDocument = append(mock.calls.AttachDocument, callInfo)
	mock.lockAttachDocument.Unlock()
	return mock.AttachDocumentFunc(ctx, id, doc)
}

func (mock *projectServiceMock) AttachDocumentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Doc domain.Document
} {
	mock.lockAttachDocument.RLock()
	calls := mock.calls.AttachDocument
	mock.lockAttachDocument.RUnlock()
	return calls
}

func (mock *projectServiceMock) Document(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.DocumentFunc == nil {
		panic("projectServiceMock.DocumentFunc: method is nil but projectService.Document was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDocument.Lock()
	mock.calls.Document = append(mock.calls.Document, callInfo)
	mock.lockDocument.Unlock()
	return mock.DocumentFunc(ctx, id)
}

func (mock *projectServiceMock) DocumentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDocument.RLock()
	calls := mock.calls.Document
	mock.lockDocument.RUnlock()
	return calls
}
