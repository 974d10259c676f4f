package reports

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("report not found")
	ErrAlreadyExists = errors.New("report already exists")
)

type Repository interface {
	Create(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	List(ctx context.Context) ([]Report, error)
	Update(ctx context.Context, id string, fn func(Report) Report) (Report, error)
	Delete(ctx context.Context, id string) (bool, error)
}
