package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// Get returns one project with its member ids.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List returns every project, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// Document returns the project's attached document. A project without one
// yields a NotFoundError for "document".
func (s *Service) Document(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if _, err := s.auth.Actor(ctx); err != nil {
		return nil, err
	}
	doc, err := s.projects.Document(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}
