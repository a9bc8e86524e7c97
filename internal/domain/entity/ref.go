package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref es la referencia a otra entidad. El backend la envía a veces como id
// ("665f...") y a veces poblada como objeto ({"_id": "665f...", "name": ...});
// en ambos casos queda normalizada a su ID. Name y Email se conservan cuando
// vienen poblados para poder mostrarlos sin otra consulta.
type Ref struct {
	ID    string
	Name  string
	Email string
}

// RefTo construye una referencia solo con id.
func RefTo(id string) Ref { return Ref{ID: id} }

// IsZero indica si la referencia está vacía.
func (r Ref) IsZero() bool { return r.ID == "" }

// UnmarshalJSON acepta string, objeto poblado o null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	switch data[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	case '{':
		var obj struct {
			ID    string `json:"_id"`
			AltID string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		id := obj.ID
		if id == "" {
			id = obj.AltID
		}
		*r = Ref{ID: id, Name: obj.Name, Email: obj.Email}
		return nil
	default:
		return fmt.Errorf("referencia con formato no soportado: %s", string(data))
	}
}

// MarshalJSON siempre envía solo el id (lo que espera el backend en los payloads).
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
