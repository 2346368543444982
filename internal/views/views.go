// Package views renderiza las vistas HTML embebidas en el binario.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
)

//go:embed templates/*.tmpl
var files embed.FS

// Record es el view model de un registro: nunca incluye el hash,
// solo el hecho de que el registro está protegido.
type Record struct {
	ID          string
	Name        string
	Age         int
	Breed       string
	Description string
	Status      string
	HasSecret   bool
}

type IndexData struct {
	Records []Record
	// Query repite los parámetros del request para preservar la vista.
	Query url.Values
	// Errors mapea id de registro -> error de compuerta a mostrar inline.
	Errors   map[string]string
	Breeds   []string
	Statuses []string
}

type FormData struct {
	ID        string
	Values    url.Values
	Errors    map[string]string
	GateError string
	Breeds    []string
	Statuses  []string
}

type ShowData struct {
	Record Record
}

type Renderer struct {
	t *template.Template
}

func New() (*Renderer, error) {
	t, err := template.ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

// Render ejecuta a un buffer primero: si el template falla no queda
// media respuesta escrita.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := rn.t.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
