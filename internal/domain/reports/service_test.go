package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"zoo-dashboard/internal/query"
)

type testRepo struct {
	items []Report
}

func (r *testRepo) Create(ctx context.Context, rep Report) error {
	for _, it := range r.items {
		if it.ID == rep.ID {
			return ErrAlreadyExists
		}
	}
	r.items = append(r.items, rep)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Report, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Report{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Report, error) {
	return append([]Report(nil), r.items...), nil
}

func (r *testRepo) Update(ctx context.Context, id string, fn func(Report) Report) (Report, error) {
	for i, it := range r.items {
		if it.ID == id {
			r.items[i] = fn(it)
			return r.items[i], nil
		}
	}
	return Report{}, ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func report(title string, cat Category, author string, d int) Report {
	return Report{
		Title:    title,
		Category: cat,
		Author:   author,
		Date:     time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_DeleteMissing_LeavesCollectionUnchanged(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, _ = svc.Add(ctx, report("Monthly health", CategoryHealth, "Dr. Vega", 1))
	_, _ = svc.Add(ctx, report("Feed audit", CategoryInventory, "Sam", 2))

	deleted, err := svc.Delete(ctx, "notthere")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted || len(repo.items) != 2 {
		t.Fatalf("expected unchanged collection, deleted=%v len=%d", deleted, len(repo.items))
	}
}

func TestService_Update_Partial(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	r, _ := svc.Add(ctx, report("Feed audit", CategoryInventory, "Sam", 2))
	title := "Feed audit Q1"
	updated, found, err := svc.Update(ctx, r.ID, Patch{Title: &title})
	if err != nil || !found {
		t.Fatalf("Update: found=%v err=%v", found, err)
	}
	if updated.Title != title || updated.Author != "Sam" || updated.Category != CategoryInventory {
		t.Fatalf("unexpected update result %#v", updated)
	}
}

func TestService_FileURL_FallsBackToCategoryPlaceholder(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	withFile := report("Incident 12", CategoryIncident, "Ana", 3)
	withFile.FileURL = "https://files.example/incident-12.pdf"
	a, _ := svc.Add(ctx, withFile)
	b, _ := svc.Add(ctx, report("Budget", CategoryFinancial, "Ana", 4))

	if got, placeholder, _ := svc.FileURL(ctx, a.ID); got != withFile.FileURL || placeholder {
		t.Fatalf("expected own file, got %s (placeholder=%v)", got, placeholder)
	}
	if got, placeholder, _ := svc.FileURL(ctx, b.ID); got != placeholderFiles[CategoryFinancial] || !placeholder {
		t.Fatalf("expected financial placeholder, got %s (placeholder=%v)", got, placeholder)
	}
	if _, _, err := svc.FileURL(ctx, "missing1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_List_SearchesAuthorAndSortsByDateDesc(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	_, _ = svc.Add(ctx, report("Monthly health", CategoryHealth, "Dr. Vega", 1))
	_, _ = svc.Add(ctx, report("Feed audit", CategoryInventory, "Sam", 2))
	_, _ = svc.Add(ctx, report("Vaccines", CategoryHealth, "Dr. Vega", 5))

	page, err := svc.List(ctx, ListFilter{Search: "vega"}, query.Params{Sort: "date", Order: query.Desc, Page: 1, PageSize: 5})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Total != 2 || page.Items[0].Title != "Vaccines" || page.Items[1].Title != "Monthly health" {
		t.Fatalf("unexpected page %#v", page.Items)
	}
}
