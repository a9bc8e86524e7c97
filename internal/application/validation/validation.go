// Package validation traduce las reglas `validate` de los DTO de formulario
// (go-playground/validator) a mensajes por campo en el idioma del administrador.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// FieldErrors campo (nombre JSON) → mensaje.
type FieldErrors map[string]string

// Validator envuelve un *validator.Validate configurado para los formularios.
type Validator struct {
	v *validator.Validate
	p *locale.Printer
}

// New configura el validador: nombres de campo JSON y decimal.Decimal
// validado como número.
func New(p *locale.Printer) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v, p: p}
}

// Struct valida s. Devuelve nil si no hay errores.
func (val *Validator) Struct(s any) FieldErrors {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	out := FieldErrors{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fieldKey(fe)] = val.messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}
	out["_"] = val.p.T(locale.MsgInvalid)
	return out
}

// Printer devuelve el traductor usado por el validador.
func (val *Validator) Printer() *locale.Printer { return val.p }

// fieldKey usa la ruta JSON sin el nombre del struct raíz (ej. "products[0].quantity").
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func (val *Validator) messageForTag(tag, param string) string {
	switch tag {
	case "required", "required_with", "required_without":
		return val.p.T(locale.MsgRequired)
	case "min", "gte":
		return val.p.T(locale.MsgMin, param)
	case "gt":
		return val.p.T(locale.MsgGreater, param)
	case "max", "lte":
		return val.p.T(locale.MsgMax, param)
	case "lt":
		return val.p.T(locale.MsgLess, param)
	case "oneof":
		return val.p.T(locale.MsgOneOf, strings.Join(strings.Fields(param), ", "))
	case "gtefield", "gtfield":
		return val.p.T(locale.MsgDateOrder)
	default:
		return val.p.T(locale.MsgInvalid)
	}
}
