package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"zoo-dashboard/internal/query"
)

// -------------------------
// Test repo (in-memory, ordenado)
// -------------------------

type testRepo struct {
	items []Animal
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	for _, it := range r.items {
		if it.ID == a.ID {
			return ErrAlreadyExists
		}
	}
	r.items = append(r.items, a.Clone())
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it.Clone(), nil
		}
	}
	return Animal{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, id string, fn func(Animal) Animal) (Animal, error) {
	for i, it := range r.items {
		if it.ID == id {
			r.items[i] = fn(it.Clone())
			return r.items[i].Clone(), nil
		}
	}
	return Animal{}, ErrNotFound
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

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newAnimal(name, species string, health HealthStatus) Animal {
	return Animal{
		Name:         name,
		Species:      species,
		Gender:       GenderFemale,
		Age:          4,
		HealthStatus: health,
		Location:     "Savanna",
		ArrivalDate:  day(2022, time.March, 1),
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Add_AssignsUniqueID(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		before := len(repo.items)
		a, err := svc.Add(ctx, newAnimal("Leo", "Lion", HealthHealthy))
		if err != nil {
			t.Fatalf("Add error: %v", err)
		}
		if len(repo.items) != before+1 {
			t.Fatalf("expected collection to grow by one")
		}
		if len(a.ID) != 8 {
			t.Fatalf("expected 8-char id, got %q", a.ID)
		}
		if _, dup := seen[a.ID]; dup {
			t.Fatalf("duplicate id %s", a.ID)
		}
		seen[a.ID] = struct{}{}
		if a.MedicalHistory == nil {
			t.Fatalf("expected empty (non-nil) medical history")
		}
	}
}

func TestService_Add_RetriesOnIDCollision(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	gen := []string{"dup00000", "dup00000", "fresh001"}
	svc.newID = func() string {
		id := gen[0]
		gen = gen[1:]
		return id
	}

	if _, err := svc.Add(context.Background(), newAnimal("Leo", "Lion", HealthHealthy)); err != nil {
		t.Fatalf("Add #1 error: %v", err)
	}
	a, err := svc.Add(context.Background(), newAnimal("Mia", "Lion", HealthHealthy))
	if err != nil {
		t.Fatalf("Add #2 error: %v", err)
	}
	if a.ID != "fresh001" {
		t.Fatalf("expected retry to pick fresh001, got %s", a.ID)
	}
}

func TestService_Add_KeepsGivenIDAndRejectsDuplicate(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	in := newAnimal("Leo", "Lion", HealthHealthy)
	in.ID = "leo-0001"
	a, err := svc.Add(ctx, in)
	if err != nil || a.ID != "leo-0001" {
		t.Fatalf("expected given id kept, got %q err=%v", a.ID, err)
	}
	if _, err := svc.Add(ctx, in); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestService_Add_RejectsInvalid(t *testing.T) {
	svc := NewService(&testRepo{})

	bad := []Animal{
		newAnimal("", "Lion", HealthHealthy),
		newAnimal("Leo", "", HealthHealthy),
		newAnimal("Leo", "Lion", HealthStatus("Sick")),
	}
	neg := newAnimal("Leo", "Lion", HealthHealthy)
	neg.Age = -1
	bad = append(bad, neg)

	for i, a := range bad {
		if _, err := svc.Add(context.Background(), a); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Update_OnlyChangesPatchedFields(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	orig, err := svc.Add(ctx, newAnimal("Leo", "Lion", HealthHealthy))
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	health := HealthConcerning
	loc := "Vet Clinic"
	updated, found, err := svc.Update(ctx, orig.ID, Patch{HealthStatus: &health, Location: &loc})
	if err != nil || !found {
		t.Fatalf("Update: found=%v err=%v", found, err)
	}

	want := orig
	want.HealthStatus = HealthConcerning
	want.Location = "Vet Clinic"
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Fatalf("unexpected update result (-want +got):\n%s", diff)
	}
}

func TestService_Update_MissingIsNoop(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, _ = svc.Add(ctx, newAnimal("Leo", "Lion", HealthHealthy))
	before, _ := repo.List(ctx)

	name := "Ghost"
	_, found, err := svc.Update(ctx, "missing1", Patch{Name: &name})
	if err != nil || found {
		t.Fatalf("expected silent no-op, got found=%v err=%v", found, err)
	}
	after, _ := repo.List(ctx)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("collection changed (-before +after):\n%s", diff)
	}
}

func TestService_Delete(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	a, _ := svc.Add(ctx, newAnimal("Leo", "Lion", HealthHealthy))
	_, _ = svc.Add(ctx, newAnimal("Mia", "Tiger", HealthHealthy))

	deleted, err := svc.Delete(ctx, "nope0000")
	if err != nil || deleted || len(repo.items) != 2 {
		t.Fatalf("expected unchanged collection on missing id")
	}

	deleted, err = svc.Delete(ctx, a.ID)
	if err != nil || !deleted || len(repo.items) != 1 {
		t.Fatalf("expected collection to shrink by one")
	}
}

func TestService_AddMedicalRecord_Appends(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	a, _ := svc.Add(ctx, newAnimal("Leo", "Lion", HealthHealthy))

	for i, typ := range []string{"Checkup", "Vaccination"} {
		got, found, err := svc.AddMedicalRecord(ctx, a.ID, MedicalRecord{
			Date:  day(2024, time.January, i+1),
			Type:  typ,
			Notes: "ok",
		})
		if err != nil || !found {
			t.Fatalf("AddMedicalRecord: found=%v err=%v", found, err)
		}
		if len(got.MedicalHistory) != i+1 || got.MedicalHistory[i].Type != typ {
			t.Fatalf("unexpected history %#v", got.MedicalHistory)
		}
	}

	if _, _, err := svc.AddMedicalRecord(ctx, a.ID, MedicalRecord{Type: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for record without date, got %v", err)
	}
	if _, found, err := svc.AddMedicalRecord(ctx, "missing1", MedicalRecord{Date: day(2024, 1, 1), Type: "x"}); err != nil || found {
		t.Fatalf("expected no-op for missing animal")
	}
}

func TestService_List_FilterSortPaginate(t *testing.T) {
	svc := NewService(&testRepo{})
	ctx := context.Background()

	for _, a := range []Animal{
		newAnimal("Leo", "Lion", HealthHealthy),
		newAnimal("Mia", "Lion", HealthConcerning),
		newAnimal("Rex", "Crocodile", HealthCritical),
		newAnimal("Nala", "Lion", HealthHealthy),
	} {
		if _, err := svc.Add(ctx, a); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	page, err := svc.List(ctx, ListFilter{Species: "lion"}, query.Params{Sort: "name", Order: query.Desc, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 {
		t.Fatalf("expected 3 lions in 2 pages, got total=%d pages=%d", page.Total, page.TotalPages)
	}
	if page.Items[0].Name != "Nala" || page.Items[1].Name != "Mia" {
		t.Fatalf("unexpected order: %s, %s", page.Items[0].Name, page.Items[1].Name)
	}

	page, err = svc.List(ctx, ListFilter{Search: "CROC", Health: "critical"}, query.Params{Sort: "name", Order: query.Asc, Page: 1, PageSize: 5})
	if err != nil || page.Total != 1 || page.Items[0].Name != "Rex" {
		t.Fatalf("expected Rex only, got %#v err=%v", page.Items, err)
	}

	_, err = svc.List(ctx, ListFilter{}, query.Params{Sort: "weight", Page: 1, PageSize: 5})
	if !errors.Is(err, query.ErrUnknownSortField) {
		t.Fatalf("expected ErrUnknownSortField, got %v", err)
	}
}
