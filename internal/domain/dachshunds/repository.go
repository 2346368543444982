package dachshunds

import "context"

// Patch lleva solo los campos a modificar: nil = no tocar.
// Quien llama debe omitir (no vaciar) lo que no quiere cambiar.
type Patch struct {
	Name         *string
	Age          *int
	Breed        *string
	Description  *string
	Status       *string
	PasswordHash *string
}

// Repository es el gateway al store de registros.
// Insert asigna y devuelve el id. Update/Delete devuelven false
// cuando el id no matchea ningún registro.
type Repository interface {
	List(ctx context.Context, f Filter, s *Sort) ([]Dachshund, error)
	GetByID(ctx context.Context, id string) (Dachshund, error)
	Insert(ctx context.Context, d Dachshund) (string, error)
	Update(ctx context.Context, id string, p Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
