package dachshunds

import (
	"net/url"
	"strconv"
)

// Filter describe qué registros matchean un listado.
// Name y Breed son substring case-insensitive; Status es match exacto.
type Filter struct {
	Name   string
	Breed  string
	Status string
	MinAge *int
	MaxAge *int
}

// Sort es campo + dirección. nil = orden natural del store.
type Sort struct {
	Field string
	Desc  bool
}

var sortableFields = map[string]bool{
	"name":   true,
	"age":    true,
	"breed":  true,
	"status": true,
}

// BuildQuery traduce los query params del request a Filter/Sort.
// Función pura, sin errores: minAge/maxAge que no parsean se descartan
// (política de lenidad, no inferir algo más estricto).
func BuildQuery(params url.Values) (Filter, *Sort) {
	f := Filter{
		Name:   params.Get("name"),
		Breed:  params.Get("breed"),
		Status: params.Get("status"),
	}

	if v := params.Get("minAge"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinAge = &n
		}
	}
	if v := params.Get("maxAge"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxAge = &n
		}
	}

	var s *Sort
	if by := params.Get("sortBy"); sortableFields[by] {
		s = &Sort{Field: by, Desc: params.Get("order") == "desc"}
	}

	return f, s
}
