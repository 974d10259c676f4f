package animals

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("animal not found")
	ErrAlreadyExists = errors.New("animal already exists")
)

// Repository mantiene la colección ordenada por inserción.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)

	// Update aplica fn sobre el registro actual de forma atómica (read-modify-write).
	Update(ctx context.Context, id string, fn func(Animal) Animal) (Animal, error)

	// Delete devuelve false si el id no existía.
	Delete(ctx context.Context, id string) (bool, error)
}
