package resources

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
)

type Repository interface {
	Create(ctx context.Context, r Resource) error
	GetByID(ctx context.Context, id string) (Resource, error)
	List(ctx context.Context) ([]Resource, error)
	Update(ctx context.Context, id string, fn func(Resource) Resource) (Resource, error)
	Delete(ctx context.Context, id string) (bool, error)
}
