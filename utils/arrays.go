package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ParseArrayField decodes a JSON-serialized array column. Malformed or empty
// stored content degrades to an empty slice; it never returns an error, so a
// bad row cannot fail a read request.
func ParseArrayField[T any](raw datatypes.JSON) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// MarshalArrayField is the write-side counterpart: nil slices are stored as
// "[]" so every array column always holds valid JSON.
func MarshalArrayField[T any](items []T) datatypes.JSON {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
