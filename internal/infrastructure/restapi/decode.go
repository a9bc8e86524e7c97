package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// DecodeError la respuesta no es JSON válido o sus elementos no tienen la forma de T.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("api: decodificar %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeCollection acepta un arreglo plano o envuelto en {"data": [...]}.
// Cualquier otra forma válida (objeto, null, escalar) produce una secuencia
// vacía sin error; el resultado nunca es nil.
func DecodeCollection[T any](body []byte) ([]T, error) {
	target := typeName[T]()
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return []T{}, nil
	}
	if !json.Valid(raw) {
		return []T{}, &DecodeError{Target: "[]" + target, Err: fmt.Errorf("JSON inválido")}
	}
	if raw[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			return []T{}, &DecodeError{Target: "[]" + target, Err: err}
		}
		raw = bytes.TrimSpace(env.Data)
	}
	if len(raw) == 0 || raw[0] != '[' {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, &DecodeError{Target: "[]" + target, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// DecodeOne acepta un objeto plano o envuelto en {"data": {...}}.
func DecodeOne[T any](body []byte) (*T, error) {
	target := typeName[T]()
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, &DecodeError{Target: target, Err: fmt.Errorf("se esperaba un objeto")}
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Target: target, Err: err}
	}
	if data, ok := env["data"]; ok {
		if d := bytes.TrimSpace(data); len(d) > 0 && d[0] == '{' {
			raw = d
		}
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{Target: target, Err: err}
	}
	return &out, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
