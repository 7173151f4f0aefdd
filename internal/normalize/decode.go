package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decoded is the result of decoding provider text. A non-empty Failure means
// Value must not be used.
type Decoded[T any] struct {
	Value   T
	Failure Failure
	Detail  string
}

// OK reports whether decoding succeeded.
func (d Decoded[T]) OK() bool {
	return d.Failure == ""
}

// Decode parses text as JSON into T and applies check, if any, to the result.
func Decode[T any](text string, check func(*T) error) Decoded[T] {
	var out Decoded[T]
	if !json.Valid([]byte(text)) {
		out.Failure = SyntaxInvalid
		out.Detail = "response is not well-formed JSON"
		return out
	}
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		out.Failure = SchemaInvalid
		out.Detail = err.Error()
		return out
	}
	if check != nil {
		if err := check(&v); err != nil {
			out.Failure = SchemaInvalid
			out.Detail = err.Error()
			return out
		}
	}
	out.Value = v
	return out
}

// Struct runs the struct's validate tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// Each runs Struct over every element of items.
func Each[T any](items []T) error {
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
