package memory

import (
	"context"

	"zoo-dashboard/internal/domain/resources"
)

type resourceRepo struct {
	c *collection[resources.Resource]
}

func NewResourceRepo(obs Observer) resources.Repository {
	return &resourceRepo{
		c: newCollection("resources",
			func(r resources.Resource) string { return r.ID },
			resources.Resource.Clone,
			resources.ErrNotFound, resources.ErrAlreadyExists, obs),
	}
}

func (r *resourceRepo) Create(ctx context.Context, res resources.Resource) error {
	return r.c.create(res)
}

func (r *resourceRepo) GetByID(ctx context.Context, id string) (resources.Resource, error) {
	return r.c.get(id)
}

func (r *resourceRepo) List(ctx context.Context) ([]resources.Resource, error) {
	return r.c.list(), nil
}

func (r *resourceRepo) Update(ctx context.Context, id string, fn func(resources.Resource) resources.Resource) (resources.Resource, error) {
	return r.c.update(id, fn)
}

func (r *resourceRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.delete(id), nil
}
