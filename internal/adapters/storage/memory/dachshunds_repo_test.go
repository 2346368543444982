package memory

import (
	"context"
	"errors"
	"testing"

	"dachshund-registry/internal/domain/dachshunds"
)

func seed(t *testing.T, repo dachshunds.Repository) map[string]string {
	t.Helper()

	ids := map[string]string{}
	for _, d := range []dachshunds.Dachshund{
		{Name: "Reksio", Age: 1, Breed: "jamnik krotkowlosy", Status: "dostępny"},
		{Name: "Burek", Age: 3, Breed: "jamnik dlugowlosy", Status: "adoptowany", Description: "spokojny"},
		{Name: "Fafik", Age: 6, Breed: "jamnik krotkowlosy", Status: "dostępny"},
	} {
		id, err := repo.Insert(context.Background(), d)
		if err != nil {
			t.Fatalf("Insert error: %v", err)
		}
		ids[d.Name] = id
	}
	return ids
}

func names(items []dachshunds.Dachshund) []string {
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, d.Name)
	}
	return out
}

func TestList_NaturalOrderIsInsertion(t *testing.T) {
	repo := NewDachshundsRepo()
	seed(t, repo)

	items, err := repo.List(context.Background(), dachshunds.Filter{}, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	got := names(items)
	want := []string{"Reksio", "Burek", "Fafik"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected insertion order %v, got %v", want, got)
		}
	}
}

func TestList_NameSubstringCaseInsensitive(t *testing.T) {
	repo := NewDachshundsRepo()
	seed(t, repo)

	items, err := repo.List(context.Background(), dachshunds.Filter{Name: "REK"}, nil)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Reksio" {
		t.Fatalf("expected only Reksio, got %v", names(items))
	}
}

func TestList_StatusExactMatch(t *testing.T) {
	repo := NewDachshundsRepo()
	seed(t, repo)

	items, _ := repo.List(context.Background(), dachshunds.Filter{Status: "adoptowany"}, nil)
	if len(items) != 1 || items[0].Name != "Burek" {
		t.Fatalf("expected only Burek, got %v", names(items))
	}

	// substring de status no matchea
	items, _ = repo.List(context.Background(), dachshunds.Filter{Status: "adopt"}, nil)
	if len(items) != 0 {
		t.Fatalf("expected exact status match only, got %v", names(items))
	}
}

func TestList_AgeRangeInclusive(t *testing.T) {
	repo := NewDachshundsRepo()
	seed(t, repo)

	minAge, maxAge := 2, 5
	items, _ := repo.List(context.Background(), dachshunds.Filter{MinAge: &minAge, MaxAge: &maxAge}, nil)
	if len(items) != 1 || items[0].Name != "Burek" {
		t.Fatalf("expected only Burek in [2,5], got %v", names(items))
	}

	// bordes inclusivos
	minAge, maxAge = 1, 6
	items, _ = repo.List(context.Background(), dachshunds.Filter{MinAge: &minAge, MaxAge: &maxAge}, nil)
	if len(items) != 3 {
		t.Fatalf("expected all three in [1,6], got %v", names(items))
	}
}

func TestList_SortAgeDesc(t *testing.T) {
	repo := NewDachshundsRepo()
	seed(t, repo)

	items, _ := repo.List(context.Background(), dachshunds.Filter{}, &dachshunds.Sort{Field: "age", Desc: true})
	for i := 1; i < len(items); i++ {
		if items[i].Age > items[i-1].Age {
			t.Fatalf("expected non-increasing ages, got %v", names(items))
		}
	}
}

func TestGetByID_MalformedIDIsNotFound(t *testing.T) {
	repo := NewDachshundsRepo()
	seed(t, repo)

	_, err := repo.GetByID(context.Background(), "no-es-un-uuid")
	if !errors.Is(err, dachshunds.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for literal key, got %v", err)
	}
}

func TestUpdate_PatchLeavesOmittedFields(t *testing.T) {
	repo := NewDachshundsRepo()
	ids := seed(t, repo)

	name := "Burek II"
	ok, err := repo.Update(context.Background(), ids["Burek"], dachshunds.Patch{Name: &name})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}

	d, _ := repo.GetByID(context.Background(), ids["Burek"])
	if d.Name != "Burek II" {
		t.Fatalf("expected name updated, got %q", d.Name)
	}
	if d.Description != "spokojny" || d.Age != 3 || d.Status != "adoptowany" {
		t.Fatalf("expected omitted fields untouched, got %#v", d)
	}
}

func TestUpdate_UnknownIDReportsFalse(t *testing.T) {
	repo := NewDachshundsRepo()

	name := "x"
	ok, err := repo.Update(context.Background(), "missing", dachshunds.Patch{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for unknown id")
	}
}

func TestDelete(t *testing.T) {
	repo := NewDachshundsRepo()
	ids := seed(t, repo)

	ok, err := repo.Delete(context.Background(), ids["Fafik"])
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if _, err := repo.GetByID(context.Background(), ids["Fafik"]); !errors.Is(err, dachshunds.ErrNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}

	ok, err = repo.Delete(context.Background(), ids["Fafik"])
	if err != nil || ok {
		t.Fatalf("expected ok=false on second delete, got ok=%v err=%v", ok, err)
	}
}
