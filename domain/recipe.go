// domain/recipe.go
package domain

import (
	"encoding/json"
	"errors"
)

// ErrMissingFields is returned when a create payload lacks a required field.
var ErrMissingFields = errors.New("name, ingredients, instructions, and category are required")

// Recipe is a stored catalog entry. ID is the creation time in epoch milliseconds.
type Recipe struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Ingredients  StringList `json:"ingredients"`
	Instructions StringList `json:"instructions"`
	Category     string     `json:"category"`
	Img          string     `json:"img,omitempty"`
}

// NewRecipe is the create payload. Nil lists mean the field was absent.
type NewRecipe struct {
	Name         string     `json:"name"`
	Ingredients  StringList `json:"ingredients"`
	Instructions StringList `json:"instructions"`
	Category     string     `json:"category"`
	Img          string     `json:"img,omitempty"`
}

// Validate reports ErrMissingFields when any required field is absent.
// Empty lists are accepted; only missing or null lists are rejected.
func (n NewRecipe) Validate() error {
	if n.Name == "" || n.Ingredients == nil || n.Instructions == nil || n.Category == "" {
		return ErrMissingFields
	}
	return nil
}

// WithID builds the stored record for the payload.
func (n NewRecipe) WithID(id int64) Recipe {
	return Recipe{
		ID:           id,
		Name:         n.Name,
		Ingredients:  append(StringList{}, n.Ingredients...),
		Instructions: append(StringList{}, n.Instructions...),
		Category:     n.Category,
		Img:          n.Img,
	}
}

// StringList is an ordered list of strings that also decodes from a single
// JSON string, which older records used for instructions.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
