package dachshunds

import (
	"net/url"
	"testing"
)

func TestBuildQuery_Empty(t *testing.T) {
	f, s := BuildQuery(url.Values{})
	if f.Name != "" || f.Breed != "" || f.Status != "" || f.MinAge != nil || f.MaxAge != nil {
		t.Fatalf("expected empty filter, got %#v", f)
	}
	if s != nil {
		t.Fatalf("expected no sort, got %#v", s)
	}
}

func TestBuildQuery_Filters(t *testing.T) {
	params := url.Values{}
	params.Set("name", "rex")
	params.Set("breed", "jamnik")
	params.Set("status", "dostępny")
	params.Set("minAge", "2")
	params.Set("maxAge", "5")

	f, _ := BuildQuery(params)
	if f.Name != "rex" || f.Breed != "jamnik" || f.Status != "dostępny" {
		t.Fatalf("unexpected filter %#v", f)
	}
	if f.MinAge == nil || *f.MinAge != 2 {
		t.Fatalf("expected minAge 2, got %v", f.MinAge)
	}
	if f.MaxAge == nil || *f.MaxAge != 5 {
		t.Fatalf("expected maxAge 5, got %v", f.MaxAge)
	}
}

func TestBuildQuery_MalformedBoundsDropped(t *testing.T) {
	params := url.Values{}
	params.Set("minAge", "abc")
	params.Set("maxAge", "2.5")

	f, _ := BuildQuery(params)
	if f.MinAge != nil {
		t.Fatalf("expected malformed minAge dropped, got %v", *f.MinAge)
	}
	if f.MaxAge != nil {
		t.Fatalf("expected malformed maxAge dropped, got %v", *f.MaxAge)
	}
}

func TestBuildQuery_Sort(t *testing.T) {
	cases := []struct {
		name   string
		sortBy string
		order  string
		want   *Sort
	}{
		{"age desc", "age", "desc", &Sort{Field: "age", Desc: true}},
		{"name sin order", "name", "", &Sort{Field: "name"}},
		{"order distinto de desc es asc", "breed", "descending", &Sort{Field: "breed"}},
		{"campo desconocido", "passwordHash", "desc", nil},
		{"sin sortBy", "", "desc", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := url.Values{}
			if tc.sortBy != "" {
				params.Set("sortBy", tc.sortBy)
			}
			if tc.order != "" {
				params.Set("order", tc.order)
			}

			_, s := BuildQuery(params)
			if tc.want == nil {
				if s != nil {
					t.Fatalf("expected no sort, got %#v", s)
				}
				return
			}
			if s == nil {
				t.Fatalf("expected sort %#v, got nil", tc.want)
			}
			if *s != *tc.want {
				t.Fatalf("expected %#v, got %#v", tc.want, s)
			}
		})
	}
}
