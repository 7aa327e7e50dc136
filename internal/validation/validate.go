package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxTelephoneDigits = 10

var std = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Los paths de error usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "telephone", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if s == "" || len(s) > maxTelephoneDigits {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	mustRegister(v, "hasroles", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < f.Len(); i++ {
			if strings.TrimSpace(f.Index(i).String()) != "" {
				return true
			}
		}
		return false
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Create valida un payload de alta: el id no debe venir, y luego
// las restricciones de campo. Todas las violaciones se acumulan.
func Create(object string, payloadID *int, payload any) Errors {
	var errs Errors
	if payloadID != nil {
		errs.Add(ObjectBody, "id", *payloadID, MsgIDSpecified)
	}
	errs = append(errs, Fields(object, payload)...)
	return errs
}

// Update valida un payload de modificación. Un id ausente en el body
// se considera coincidente: manda el id del path.
func Update(object string, pathID int, payloadID *int, payload any) Errors {
	var errs Errors
	if payloadID != nil && *payloadID != pathID {
		errs.Add(ObjectBody, "id", *payloadID, fmt.Sprintf("does not match pathId: %d", pathID))
	}
	errs = append(errs, Fields(object, payload)...)
	return errs
}

// Fields aplica las restricciones declaradas con tags `validate` en payload.
func Fields(object string, payload any) Errors {
	if payload == nil {
		return Errors{{ObjectName: object, FieldName: "", FieldValue: nil, ErrorMessage: MsgNotNull}}
	}

	err := std.Struct(payload)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return Errors{{ObjectName: object, FieldName: "", FieldValue: nil, ErrorMessage: MsgNotNull}}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{{ObjectName: object, FieldName: "", FieldValue: nil, ErrorMessage: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			ObjectName:   object,
			FieldName:    fieldPath(fe.Namespace()),
			FieldValue:   fieldValue(fe),
			ErrorMessage: message(fe),
		})
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "petPayload.owner.id" -> "owner.id".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldValue(fe validator.FieldError) any {
	v := reflect.ValueOf(fe.Value())
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		if v.IsNil() {
			return nil
		}
	}
	return fe.Value()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return MsgNotEmpty
		}
		return MsgNotNull
	case "notblank":
		return MsgNotEmpty
	case "telephone":
		return fmt.Sprintf("numeric value out of bounds (<%d digits>.<0 digits> expected)", maxTelephoneDigits)
	case "hasroles":
		return "must have at least a role set"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
