package memory

import (
	"context"

	"zoo-dashboard/internal/domain/reports"
)

type reportRepo struct {
	c *collection[reports.Report]
}

func NewReportRepo(obs Observer) reports.Repository {
	return &reportRepo{
		c: newCollection("reports",
			func(r reports.Report) string { return r.ID },
			nil,
			reports.ErrNotFound, reports.ErrAlreadyExists, obs),
	}
}

func (r *reportRepo) Create(ctx context.Context, rep reports.Report) error {
	return r.c.create(rep)
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	return r.c.get(id)
}

func (r *reportRepo) List(ctx context.Context) ([]reports.Report, error) {
	return r.c.list(), nil
}

func (r *reportRepo) Update(ctx context.Context, id string, fn func(reports.Report) reports.Report) (reports.Report, error) {
	return r.c.update(id, fn)
}

func (r *reportRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.delete(id), nil
}
