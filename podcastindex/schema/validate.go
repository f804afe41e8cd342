package schema

import (
	"fmt"
	"sort"
)

// FieldError is one structural mismatch, located by a dotted path into
// the response document (e.g. "feeds[3].title").
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Check validates a decoded response document against a schema. Every
// mismatch is collected so the report is exhaustive; a nil or empty
// result means the document passes. Fields present in the document but
// not in the schema are ignored.
func Check(doc map[string]any, s *Schema) []FieldError {
	return checkFields(doc, s.Fields, "")
}

func checkFields(doc map[string]any, fields map[string]*Field, prefix string) []FieldError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []FieldError
	for _, name := range names {
		field := fields[name]
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		value, present := doc[name]
		if !present || value == nil {
			if !field.Optional {
				errs = append(errs, FieldError{Path: path, Message: "missing required field"})
			}
			continue
		}

		errs = append(errs, checkValue(value, field, path)...)
	}
	return errs
}

func checkValue(value any, field *Field, path string) []FieldError {
	got := kindOf(value)
	if got != field.Kind {
		return []FieldError{{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %s", field.Kind, got),
		}}
	}

	var errs []FieldError
	switch field.Kind {
	case KindObject:
		if len(field.Fields) > 0 {
			errs = checkFields(value.(map[string]any), field.Fields, path)
		}
	case KindArray:
		if field.Elem != nil {
			for i, elem := range value.([]any) {
				errs = append(errs, checkValue(elem, field.Elem, fmt.Sprintf("%s[%d]", path, i))...)
			}
		}
	}
	return errs
}

// kindOf maps a decoded JSON value to its structural kind.
func kindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case float64:
		return KindNumber
	case bool:
		return KindBoolean
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	}
	return Kind(fmt.Sprintf("%T", v))
}
