// Package validation decide si una mutación se acepta o se rechaza
// y cómo se comunican los errores de campo al cliente.
package validation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ObjectBody es el objectName de los errores de consistencia de id.
const ObjectBody = "body"

const (
	MsgIDSpecified  = "must not be specified"
	MsgNotEmpty     = "must not be empty"
	MsgNotNull      = "must not be null"
	MsgDoesNotExist = "does not exist"
)

// FieldError es una violación sobre un campo del payload.
type FieldError struct {
	ObjectName   string `json:"objectName"`
	FieldName    string `json:"fieldName"`
	FieldValue   any    `json:"fieldValue"`
	ErrorMessage string `json:"errorMessage"`
}

// Errors es la lista ordenada de violaciones. Vacía => request aceptado.
// Implementa error para poder cruzar la fachada.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", fe.ObjectName, fe.FieldName, fe.ErrorMessage))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) HasErrors() bool { return len(e) > 0 }

// Add agrega una violación.
func (e *Errors) Add(object, field string, value any, msg string) {
	*e = append(*e, FieldError{
		ObjectName:   object,
		FieldName:    field,
		FieldValue:   value,
		ErrorMessage: msg,
	})
}

// Err devuelve nil si no hay violaciones.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// JSON serializa la lista como array (nunca null).
func (e Errors) JSON() string {
	if e == nil {
		e = Errors{}
	}
	b, err := json.Marshal(e)
	if err != nil {
		return "[]"
	}
	return string(b)
}

type errorBody struct {
	Errors Errors `json:"errors"`
	Entity any    `json:"entity,omitempty"`
}

// Respond escribe el 400: lista en el header "errors" y en el body,
// junto con el payload recibido (si hay).
func Respond(w http.ResponseWriter, errs Errors, entity any) {
	if errs == nil {
		errs = Errors{}
	}
	w.Header().Set("errors", errs.JSON())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(errorBody{Errors: errs, Entity: entity})
}
