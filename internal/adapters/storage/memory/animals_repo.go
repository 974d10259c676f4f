package memory

import (
	"context"

	"zoo-dashboard/internal/domain/animals"
)

type animalRepo struct {
	c *collection[animals.Animal]
}

func NewAnimalRepo(obs Observer) animals.Repository {
	return &animalRepo{
		c: newCollection("animals",
			func(a animals.Animal) string { return a.ID },
			animals.Animal.Clone,
			animals.ErrNotFound, animals.ErrAlreadyExists, obs),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	return r.c.create(a)
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return r.c.get(id)
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.c.list(), nil
}

func (r *animalRepo) Update(ctx context.Context, id string, fn func(animals.Animal) animals.Animal) (animals.Animal, error) {
	return r.c.update(id, fn)
}

func (r *animalRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.delete(id), nil
}
