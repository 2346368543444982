package dachshunds

// Valores heredados del refugio; los formularios solo ofrecen estos.
var (
	AllowedBreeds   = []string{"jamnik krotkowlosy", "jamnik dlugowlosy"}
	AllowedStatuses = []string{"dostępny", "adoptowany"}
)

// Dachshund representa un registro del catálogo.
// PasswordHash vacío = el registro no está protegido.
type Dachshund struct {
	ID           string
	Name         string
	Age          int
	Breed        string
	Description  string
	Status       string
	PasswordHash string
}

func IsAllowedBreed(b string) bool {
	for _, v := range AllowedBreeds {
		if v == b {
			return true
		}
	}
	return false
}

func IsAllowedStatus(s string) bool {
	for _, v := range AllowedStatuses {
		if v == s {
			return true
		}
	}
	return false
}
