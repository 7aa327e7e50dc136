package clinic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout es el formato de fecha en el wire (yyyy/MM/dd).
const DateLayout = "2006/01/02"

// Date es una fecha sin hora. El valor cero significa "sin fecha".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date must be yyyy/MM/dd: %w", err)
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Owner es el dueño de una o más mascotas.
type Owner struct {
	ID        int
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string

	// Cargadas por el servicio, en orden de id.
	Pets []Pet
}

// Pet pertenece siempre a un Owner. TypeID 0 = sin tipo.
type Pet struct {
	ID        int
	Name      string
	BirthDate Date
	TypeID    int
	OwnerID   int

	// Cargados por el servicio. Owner va sin sus Pets.
	Type   *PetType
	Owner  *Owner
	Visits []Visit
}

type PetType struct {
	ID   int
	Name string
}

// Visit registra una atención a una mascota.
type Visit struct {
	ID          int
	Date        Date
	Description string
	PetID       int

	// Cargada por el servicio, con tipo y owner pero sin visitas.
	Pet *Pet
}

// Vet es un veterinario con un conjunto de especialidades sin duplicados.
type Vet struct {
	ID          int
	FirstName   string
	LastName    string
	Specialties []Specialty
}

type Specialty struct {
	ID   int
	Name string
}

// AddSpecialty agrega s si no estaba (por id).
func (v *Vet) AddSpecialty(s Specialty) {
	for _, cur := range v.Specialties {
		if cur.ID == s.ID {
			return
		}
	}
	v.Specialties = append(v.Specialties, s)
}

func (v *Vet) ClearSpecialties() {
	v.Specialties = nil
}

// SpecialtyIDs devuelve los ids en el orden del set.
func (v Vet) SpecialtyIDs() []int {
	out := make([]int, 0, len(v.Specialties))
	for _, s := range v.Specialties {
		out = append(out, s.ID)
	}
	return out
}
