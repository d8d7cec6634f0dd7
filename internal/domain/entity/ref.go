package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnknownName nombre mostrado cuando una referencia no puede resolverse a un
// nombre legible (id plano sin lookup disponible, o categoría eliminada).
const UnknownName = "Unknown"

// Ref referencia a otra entidad tal como la devuelve la API. El backend es
// inconsistente: a veces serializa la relación como id plano ("665f...") y a
// veces como objeto poblado {_id, name}. Ref decodifica ambas formas y expone
// una única vía de resolución en lugar de chequeos de tipo dispersos.
type Ref struct {
	id       string
	name     string
	embedded bool
}

// RefByID construye una referencia por id plano.
func RefByID(id string) Ref {
	return Ref{id: id}
}

// RefEmbedded construye una referencia con el objeto poblado {_id, name}.
func RefEmbedded(id, name string) Ref {
	return Ref{id: id, name: name, embedded: true}
}

// ID devuelve el identificador referenciado, venga como venga de la API.
func (r Ref) ID() string { return r.id }

// IsZero indica si la referencia está vacía (campo ausente o null).
func (r Ref) IsZero() bool { return r.id == "" && !r.embedded }

// EmbeddedName devuelve el nombre del objeto poblado, si la API lo incluyó.
func (r Ref) EmbeddedName() (string, bool) {
	if !r.embedded {
		return "", false
	}
	return r.name, true
}

// DisplayName resuelve un nombre legible: usa el objeto poblado si existe y,
// para ids planos, consulta lookup (puede ser nil). Si nada resuelve devuelve
// UnknownName.
func (r Ref) DisplayName(lookup func(id string) (string, bool)) string {
	if name, ok := r.EmbeddedName(); ok && name != "" {
		return name
	}
	if lookup != nil && r.id != "" {
		if name, ok := lookup(r.id); ok {
			return name
		}
	}
	return UnknownName
}

type refObject struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// UnmarshalJSON acepta string, objeto {_id, name} o null.
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return fmt.Errorf("ref: decodificar id plano: %w", err)
		}
		*r = RefByID(id)
		return nil
	}
	var obj refObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("ref: decodificar objeto poblado: %w", err)
	}
	*r = RefEmbedded(obj.ID, obj.Name)
	return nil
}

// MarshalJSON conserva la forma recibida: objeto poblado u id plano.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	if r.embedded {
		return json.Marshal(refObject{ID: r.id, Name: r.name})
	}
	return json.Marshal(r.id)
}
