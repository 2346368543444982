package dachshunds

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"dachshund-registry/internal/platform/logger"
	"dachshund-registry/internal/views"

	"github.com/go-chi/chi/v5"
)

// Copy para el usuario (heredada del refugio, en polaco).
const (
	msgNotFound       = "Nie znaleziono jamnika"
	msgServerError    = "Wystąpił błąd serwera"
	msgBadForm        = "Nieprawidłowe dane formularza"
	msgEditRequired   = "Hasło wymagane do edycji"
	msgDeleteRequired = "Hasło wymagane do usunięcia"
	msgBadPassword    = "Nieprawidłowe hasło"
)

func RegisterRoutes(r chi.Router, svc *Service, rnd *views.Renderer, log logger.Logger) {
	r.Get("/", indexHandler(svc, rnd, log))
	r.Get("/new", newFormHandler(rnd, log))
	r.Post("/new", createHandler(svc, rnd, log))
	r.Get("/{id}", showHandler(svc, rnd, log))
	r.Get("/{id}/edit", editFormHandler(svc, rnd, log))
	r.Post("/{id}", updateHandler(svc, rnd, log))
	r.Post("/{id}/delete", deleteHandler(svc, rnd, log))
}

func indexHandler(svc *Service, rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), q)
		if err != nil {
			log.Error("listado de jamniki falló", map[string]any{"error": err.Error()})
			http.Error(w, msgServerError, http.StatusInternalServerError)
			return
		}
		renderIndex(w, rnd, log, http.StatusOK, items, q, nil)
	}
}

func newFormHandler(rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, rnd, log, http.StatusOK, "new.tmpl", formData("", url.Values{}, nil, ""))
	}
}

func createHandler(svc *Service, rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, msgBadForm, http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Name:        r.PostFormValue("name"),
			Age:         r.PostFormValue("age"),
			Breed:       r.PostFormValue("breed"),
			Description: r.PostFormValue("description"),
			Status:      r.PostFormValue("status"),
			Password:    r.PostFormValue("password"),
		}

		_, err := svc.Create(r.Context(), in)
		var ferr FieldErrors
		switch {
		case err == nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.As(err, &ferr):
			// Re-render con los valores enviados: el caller no pierde lo tipeado.
			render(w, rnd, log, http.StatusBadRequest, "new.tmpl", formData("", r.PostForm, ferr, ""))
		default:
			log.Error("alta de jamnik falló", map[string]any{"error": err.Error()})
			http.Error(w, msgServerError, http.StatusInternalServerError)
		}
	}
}

func showHandler(svc *Service, rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		d, err := svc.Get(r.Context(), id)
		switch {
		case err == nil:
			render(w, rnd, log, http.StatusOK, "show.tmpl", views.ShowData{Record: toRecord(d)})
		case errors.Is(err, ErrNotFound):
			http.Error(w, msgNotFound, http.StatusNotFound)
		default:
			log.Error("lectura de jamnik falló", map[string]any{"id": id, "error": err.Error()})
			http.Error(w, msgServerError, http.StatusInternalServerError)
		}
	}
}

func editFormHandler(svc *Service, rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		d, err := svc.Get(r.Context(), id)
		switch {
		case err == nil:
			v := url.Values{}
			v.Set("name", d.Name)
			v.Set("age", strconv.Itoa(d.Age))
			v.Set("breed", d.Breed)
			v.Set("description", d.Description)
			v.Set("status", d.Status)
			render(w, rnd, log, http.StatusOK, "edit.tmpl", formData(id, v, nil, ""))
		case errors.Is(err, ErrNotFound):
			http.Error(w, msgNotFound, http.StatusNotFound)
		default:
			log.Error("lectura de jamnik falló", map[string]any{"id": id, "error": err.Error()})
			http.Error(w, msgServerError, http.StatusInternalServerError)
		}
	}
}

func updateHandler(svc *Service, rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, msgBadForm, http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")

		// description ausente != description vacía: ausente no debe pisar
		// lo guardado.
		var desc *string
		if r.PostForm.Has("description") {
			v := r.PostFormValue("description")
			desc = &v
		}

		in := UpdateInput{
			Name:        r.PostFormValue("name"),
			Age:         r.PostFormValue("age"),
			Breed:       r.PostFormValue("breed"),
			Description: desc,
			Status:      r.PostFormValue("status"),
			Password:    r.PostFormValue("password"),
			NewPassword: r.PostFormValue("newPassword"),
		}

		err := svc.Update(r.Context(), id, in)
		var ferr FieldErrors
		switch {
		case err == nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, ErrNotFound):
			http.Error(w, msgNotFound, http.StatusNotFound)
		case errors.As(err, &ferr):
			render(w, rnd, log, http.StatusBadRequest, "edit.tmpl", formData(id, r.PostForm, ferr, ""))
		case errors.Is(err, ErrPasswordRequired):
			render(w, rnd, log, http.StatusForbidden, "edit.tmpl", formData(id, r.PostForm, nil, msgEditRequired))
		case errors.Is(err, ErrPasswordInvalid):
			render(w, rnd, log, http.StatusForbidden, "edit.tmpl", formData(id, r.PostForm, nil, msgBadPassword))
		default:
			log.Error("edición de jamnik falló", map[string]any{"id": id, "error": err.Error()})
			http.Error(w, msgServerError, http.StatusInternalServerError)
		}
	}
}

func deleteHandler(svc *Service, rnd *views.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, msgBadForm, http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), id, r.PostFormValue("password"))
		switch {
		case err == nil:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, ErrNotFound):
			http.Error(w, msgNotFound, http.StatusNotFound)
		case errors.Is(err, ErrPasswordRequired):
			renderIndexWithGateError(w, r, svc, rnd, log, id, msgDeleteRequired)
		case errors.Is(err, ErrPasswordInvalid):
			renderIndexWithGateError(w, r, svc, rnd, log, id, msgBadPassword)
		default:
			log.Error("baja de jamnik falló", map[string]any{"id": id, "error": err.Error()})
			http.Error(w, msgServerError, http.StatusInternalServerError)
		}
	}
}

// renderIndexWithGateError re-lista con el filtro/orden que viajó en los
// hidden inputs del propio form, para no perder la vista del caller.
func renderIndexWithGateError(w http.ResponseWriter, r *http.Request, svc *Service, rnd *views.Renderer, log logger.Logger, id, msg string) {
	items, err := svc.List(r.Context(), r.PostForm)
	if err != nil {
		log.Error("re-listado tras fallo de compuerta falló", map[string]any{"error": err.Error()})
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}
	renderIndex(w, rnd, log, http.StatusForbidden, items, r.PostForm, map[string]string{id: msg})
}

func renderIndex(w http.ResponseWriter, rnd *views.Renderer, log logger.Logger, status int, items []Dachshund, q url.Values, gateErrs map[string]string) {
	recs := make([]views.Record, 0, len(items))
	for _, d := range items {
		recs = append(recs, toRecord(d))
	}
	if gateErrs == nil {
		gateErrs = map[string]string{}
	}
	render(w, rnd, log, status, "index.tmpl", views.IndexData{
		Records:  recs,
		Query:    q,
		Errors:   gateErrs,
		Breeds:   AllowedBreeds,
		Statuses: AllowedStatuses,
	})
}

func formData(id string, values url.Values, ferr FieldErrors, gateErr string) views.FormData {
	if ferr == nil {
		ferr = FieldErrors{}
	}
	return views.FormData{
		ID:        id,
		Values:    values,
		Errors:    ferr,
		GateError: gateErr,
		Breeds:    AllowedBreeds,
		Statuses:  AllowedStatuses,
	}
}

func render(w http.ResponseWriter, rnd *views.Renderer, log logger.Logger, status int, name string, data any) {
	if err := rnd.Render(w, status, name, data); err != nil {
		log.Error("render de vista falló", map[string]any{"view": name, "error": err.Error()})
		http.Error(w, msgServerError, http.StatusInternalServerError)
	}
}

// toRecord arma el view model: el hash nunca viaja a las vistas.
func toRecord(d Dachshund) views.Record {
	return views.Record{
		ID:          d.ID,
		Name:        d.Name,
		Age:         d.Age,
		Breed:       d.Breed,
		Description: d.Description,
		Status:      d.Status,
		HasSecret:   d.PasswordHash != "",
	}
}
