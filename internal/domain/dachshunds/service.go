package dachshunds

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound = errors.New("dachshund not found")

	// Errores de la compuerta de secreto: el registro tiene hash guardado
	// y el caller no mandó el password, o mandó uno que no matchea.
	ErrPasswordRequired = errors.New("password required")
	ErrPasswordInvalid  = errors.New("password invalid")
)

// FieldErrors mapea campo del formulario -> mensaje para el usuario.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	v := validator.New()
	// El set permitido vive en el modelo; los tags solo lo referencian.
	_ = v.RegisterValidation("allowed_breed", func(fl validator.FieldLevel) bool {
		return IsAllowedBreed(fl.Field().String())
	})
	_ = v.RegisterValidation("allowed_status", func(fl validator.FieldLevel) bool {
		return IsAllowedStatus(fl.Field().String())
	})
	return &Service{repo: repo, validate: v}
}

type CreateInput struct {
	Name        string `validate:"required"`
	Age         string `validate:"-"`
	Breed       string `validate:"required,allowed_breed"`
	Description string `validate:"-"`
	Status      string `validate:"required,allowed_status"`
	Password    string `validate:"omitempty,min=6"`
}

type UpdateInput struct {
	Name        string  `validate:"required"`
	Age         string  `validate:"-"`
	Breed       string  `validate:"required,allowed_breed"`
	Description *string `validate:"-"`
	Status      string  `validate:"required,allowed_status"`
	Password    string  `validate:"-"`
	NewPassword string  `validate:"omitempty,min=6"`
}

func (s *Service) List(ctx context.Context, params url.Values) ([]Dachshund, error) {
	f, srt := BuildQuery(params)
	out, err := s.repo.List(ctx, f, srt)
	if err != nil {
		return nil, fmt.Errorf("list dachshunds: %w", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Dachshund, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Dachshund{}, ErrNotFound
		}
		return Dachshund{}, fmt.Errorf("get dachshund %q: %w", id, err)
	}
	return d, nil
}

// Create valida y persiste un registro nuevo. Si vino password,
// se guarda solo su digest (nunca el texto plano).
func (s *Service) Create(ctx context.Context, in CreateInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Status = strings.TrimSpace(in.Status)

	ferr := s.fieldErrors(in)
	age, ageErr := parseAge(in.Age)
	if ageErr != "" {
		ferr["age"] = ageErr
	}
	if len(ferr) > 0 {
		return "", ferr
	}

	d := Dachshund{
		Name:        in.Name,
		Age:         age,
		Breed:       in.Breed,
		Description: in.Description,
		Status:      in.Status,
	}
	if in.Password != "" {
		d.PasswordHash = hashSecret(in.Password)
	}

	id, err := s.repo.Insert(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert dachshund: %w", err)
	}
	return id, nil
}

// Update aplica la compuerta de secreto recién después de que la
// validación de campos pasó, y corta antes de tocar el store.
// Campos no provistos quedan fuera del Patch para no pisarlos.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Status = strings.TrimSpace(in.Status)

	ferr := s.fieldErrors(in)
	age, ageErr := parseAge(in.Age)
	if ageErr != "" {
		ferr["age"] = ageErr
	}
	if len(ferr) > 0 {
		return ferr
	}

	if existing.PasswordHash != "" {
		if in.Password == "" {
			return ErrPasswordRequired
		}
		if hashSecret(in.Password) != existing.PasswordHash {
			return ErrPasswordInvalid
		}
	}

	p := Patch{
		Name:        &in.Name,
		Age:         &age,
		Breed:       &in.Breed,
		Status:      &in.Status,
		Description: in.Description,
	}
	if in.NewPassword != "" {
		h := hashSecret(in.NewPassword)
		p.PasswordHash = &h
	}

	ok, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return fmt.Errorf("update dachshund %q: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete aplica la misma compuerta de dos etapas que Update.
func (s *Service) Delete(ctx context.Context, id, password string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if existing.PasswordHash != "" {
		if password == "" {
			return ErrPasswordRequired
		}
		if hashSecret(password) != existing.PasswordHash {
			return ErrPasswordInvalid
		}
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete dachshund %q: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// hashSecret es sha256 hex: determinístico y one-way, igual que el
// digest guardado históricamente en los registros existentes.
func hashSecret(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// parseAge distingue "no vino" de "no es número no negativo".
func parseAge(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "Wiek musi być podany"
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, "Wiek musi być liczbą nieujemną"
	}
	return n, ""
}

func (s *Service) fieldErrors(in any) FieldErrors {
	ferr := FieldErrors{}
	err := s.validate.Struct(in)
	if err == nil {
		return ferr
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		ferr["form"] = "Nieprawidłowe dane"
		return ferr
	}
	for _, e := range verrs {
		switch e.StructField() {
		case "Name":
			ferr["name"] = "Nazwa nie może być pusta"
		case "Breed":
			if e.Tag() == "required" {
				ferr["breed"] = "Rasa nie może być pusta"
			} else {
				ferr["breed"] = "Nieprawidłowa rasa"
			}
		case "Status":
			if e.Tag() == "required" {
				ferr["status"] = "Status nie może być pusty"
			} else {
				ferr["status"] = "Nieprawidłowy status"
			}
		case "Password":
			ferr["password"] = "Hasło musi mieć minimum 6 znaków"
		case "NewPassword":
			ferr["newPassword"] = "Nowe hasło musi mieć minimum 6 znaków"
		}
	}
	return ferr
}
