package clinic

// Payloads de escritura. El id es puntero para distinguir "no enviado".
// Las referencias se reciben como {"id": N}; el resto del objeto se ignora,
// así que el cuerpo de un GET se puede reenviar tal cual en un PUT.

type entityRef struct {
	ID *int `json:"id" validate:"required"`
}

func (r *entityRef) value() int {
	if r == nil || r.ID == nil {
		return 0
	}
	return *r.ID
}

type ownerPayload struct {
	ID        *int   `json:"id,omitempty"`
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
	Address   string `json:"address" validate:"notblank"`
	City      string `json:"city" validate:"notblank"`
	Telephone string `json:"telephone" validate:"notblank,telephone"`
}

func (p *ownerPayload) id() *int {
	if p == nil {
		return nil
	}
	return p.ID
}

type petPayload struct {
	ID        *int       `json:"id,omitempty"`
	Name      string     `json:"name" validate:"notblank"`
	BirthDate Date       `json:"birthDate" validate:"-"`
	Type      *entityRef `json:"type,omitempty"`
	Owner     *entityRef `json:"owner" validate:"required"`
}

func (p *petPayload) id() *int {
	if p == nil {
		return nil
	}
	return p.ID
}

type visitPayload struct {
	ID          *int       `json:"id,omitempty"`
	Date        Date       `json:"date" validate:"-"`
	Description string     `json:"description" validate:"notblank"`
	Pet         *entityRef `json:"pet" validate:"required"`
}

func (p *visitPayload) id() *int {
	if p == nil {
		return nil
	}
	return p.ID
}

type vetPayload struct {
	ID          *int        `json:"id,omitempty"`
	FirstName   string      `json:"firstName" validate:"notblank"`
	LastName    string      `json:"lastName" validate:"notblank"`
	Specialties []entityRef `json:"specialties" validate:"dive"`
}

func (p *vetPayload) id() *int {
	if p == nil {
		return nil
	}
	return p.ID
}

// namedPayload sirve para PetType y Specialty.
type namedPayload struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name" validate:"notblank"`
}

func (p *namedPayload) id() *int {
	if p == nil {
		return nil
	}
	return p.ID
}

// Respuestas.

type ownerResponse struct {
	ID        int           `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      []petResponse `json:"pets"`
}

// ownerRefResponse es el owner embebido en una mascota, sin sus pets.
type ownerRefResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

type petResponse struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	BirthDate Date              `json:"birthDate"`
	Type      *petTypeResponse  `json:"type"`
	Owner     *ownerRefResponse `json:"owner"`
	Visits    []visitResponse   `json:"visits"`
}

// petRefResponse es la mascota embebida en una visita, sin visitas.
type petRefResponse struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	BirthDate Date              `json:"birthDate"`
	Type      *petTypeResponse  `json:"type"`
	Owner     *ownerRefResponse `json:"owner"`
}

type petTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Pet se omite en las visitas anidadas dentro de una mascota.
type visitResponse struct {
	ID          int             `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Pet         *petRefResponse `json:"pet,omitempty"`
}

type vetResponse struct {
	ID          int                 `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Specialties []specialtyResponse `json:"specialties"`
}

type specialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func toOwnerResponse(o Owner) ownerResponse {
	pets := make([]petResponse, 0, len(o.Pets))
	for _, p := range o.Pets {
		pets = append(pets, toPetResponse(p))
	}
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      pets,
	}
}

func toOwnerRefResponse(o *Owner) *ownerRefResponse {
	if o == nil {
		return nil
	}
	return &ownerRefResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
	}
}

func toPetResponse(p Pet) petResponse {
	visits := make([]visitResponse, 0, len(p.Visits))
	for _, v := range p.Visits {
		visits = append(visits, toVisitResponse(v))
	}
	ref := toPetRefResponse(p)
	return petResponse{
		ID:        ref.ID,
		Name:      ref.Name,
		BirthDate: ref.BirthDate,
		Type:      ref.Type,
		Owner:     ref.Owner,
		Visits:    visits,
	}
}

func toPetRefResponse(p Pet) petRefResponse {
	var t *petTypeResponse
	if p.Type != nil {
		tr := toPetTypeResponse(*p.Type)
		t = &tr
	}
	return petRefResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Type:      t,
		Owner:     toOwnerRefResponse(p.Owner),
	}
}

func toPetTypeResponse(t PetType) petTypeResponse {
	return petTypeResponse{ID: t.ID, Name: t.Name}
}

func toVisitResponse(v Visit) visitResponse {
	out := visitResponse{
		ID:          v.ID,
		Date:        v.Date,
		Description: v.Description,
	}
	if v.Pet != nil {
		ref := toPetRefResponse(*v.Pet)
		out.Pet = &ref
	}
	return out
}

func toVetResponse(v Vet) vetResponse {
	specs := make([]specialtyResponse, 0, len(v.Specialties))
	for _, s := range v.Specialties {
		specs = append(specs, toSpecialtyResponse(s))
	}
	return vetResponse{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Specialties: specs,
	}
}

func toSpecialtyResponse(s Specialty) specialtyResponse {
	return specialtyResponse{ID: s.ID, Name: s.Name}
}

// mapAll convierte un listado preservando el orden.
func mapAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
