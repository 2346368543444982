package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dachshund-registry/internal/domain/dachshunds"

	"github.com/google/uuid"
)

type DachshundsRepo struct {
	db *sql.DB
}

func NewDachshundsRepo(db *sql.DB) *DachshundsRepo {
	return &DachshundsRepo{db: db}
}

const selectCols = "id, name, age, breed, description, status, password_hash"

// Columnas ordenables; el traductor ya filtra, esto es el segundo candado
// antes de interpolar en el ORDER BY.
var sortColumns = map[string]string{
	"name":   "name",
	"age":    "age",
	"breed":  "breed",
	"status": "status",
}

func (r *DachshundsRepo) List(ctx context.Context, f dachshunds.Filter, s *dachshunds.Sort) ([]dachshunds.Dachshund, error) {
	var (
		conds []string
		args  []any
	)
	add := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if f.Name != "" {
		add("name ILIKE '%%' || $%d || '%%'", f.Name)
	}
	if f.Breed != "" {
		add("breed ILIKE '%%' || $%d || '%%'", f.Breed)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.MinAge != nil {
		add("age >= $%d", *f.MinAge)
	}
	if f.MaxAge != nil {
		add("age <= $%d", *f.MaxAge)
	}

	q := "SELECT " + selectCols + " FROM dachshunds"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	if s != nil {
		if col, ok := sortColumns[s.Field]; ok {
			q += " ORDER BY " + col
			if s.Desc {
				q += " DESC"
			}
		}
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dachshunds.Dachshund, 0)
	for rows.Next() {
		var d dachshunds.Dachshund
		if err := rows.Scan(&d.ID, &d.Name, &d.Age, &d.Breed, &d.Description, &d.Status, &d.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

// GetByID trata cualquier string como clave literal: un id malformado
// simplemente no matchea y resuelve a not-found, nunca a error.
func (r *DachshundsRepo) GetByID(ctx context.Context, id string) (dachshunds.Dachshund, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+selectCols+" FROM dachshunds WHERE id = $1", id)

	var d dachshunds.Dachshund
	if err := row.Scan(&d.ID, &d.Name, &d.Age, &d.Breed, &d.Description, &d.Status, &d.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return dachshunds.Dachshund{}, dachshunds.ErrNotFound
		}
		return dachshunds.Dachshund{}, err
	}
	return d, nil
}

func (r *DachshundsRepo) Insert(ctx context.Context, d dachshunds.Dachshund) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dachshunds (id, name, age, breed, description, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		id,
		d.Name,
		d.Age,
		d.Breed,
		d.Description,
		d.Status,
		d.PasswordHash,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update arma el SET solo con los campos provistos: lo omitido no se pisa.
func (r *DachshundsRepo) Update(ctx context.Context, id string, p dachshunds.Patch) (bool, error) {
	args := []any{id}
	var sets []string
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Name != nil {
		set("name", *p.Name)
	}
	if p.Age != nil {
		set("age", *p.Age)
	}
	if p.Breed != nil {
		set("breed", *p.Breed)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.Status != nil {
		set("status", *p.Status)
	}
	if p.PasswordHash != nil {
		set("password_hash", *p.PasswordHash)
	}

	if len(sets) == 0 {
		// Patch vacío: solo confirmamos existencia.
		_, err := r.GetByID(ctx, id)
		if errors.Is(err, dachshunds.ErrNotFound) {
			return false, nil
		}
		return err == nil, err
	}

	res, err := r.db.ExecContext(ctx, "UPDATE dachshunds SET "+strings.Join(sets, ", ")+" WHERE id = $1", args...)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *DachshundsRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM dachshunds WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
