package dto

import (
	"encoding/json"
)

// Optional campo de un PATCH con presencia explícita.
// Set indica que la clave vino en el JSON; Null que vino como null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some construye un Optional presente con valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON marca el campo como presente. encoding/json solo lo invoca si la clave existe.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Get devuelve el valor si vino con contenido.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set && !o.Null
}
