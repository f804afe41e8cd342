// Package schema checks live or recorded Podcast Index API responses
// against versioned structural contracts. It is a maintenance/CI tool
// run out-of-band; nothing here sits on the request hot path.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed schemas
var schemaFS embed.FS

// ErrSchemaNotFound reports a missing schema for an endpoint. This is
// a maintenance gap, not a response bug, and is reported separately
// from structural mismatches.
type ErrSchemaNotFound struct {
	Version  string
	Endpoint string
}

func (e *ErrSchemaNotFound) Error() string {
	return fmt.Sprintf("no schema for endpoint %q at version %s", e.Endpoint, e.Version)
}

// Kind is the structural kind a field must have. Kinds mirror what
// encoding/json produces when decoding into any: string, float64,
// bool, map and slice.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
)

// Field describes one expected response field. Fields are required
// unless marked optional; for arrays, Elem describes every element;
// for objects, Fields describes the nested field set. Fields absent
// from the schema are tolerated in responses, so additive API
// evolution never breaks validation.
type Field struct {
	Kind     Kind              `json:"kind"`
	Optional bool              `json:"optional,omitempty"`
	Elem     *Field            `json:"elem,omitempty"`
	Fields   map[string]*Field `json:"fields,omitempty"`
}

// Schema is the structural contract for one endpoint at one API
// version. Schemas are generated offline from the response type
// declarations and shipped as static artifacts; they are read-only
// once loaded.
type Schema struct {
	Endpoint string            `json:"endpoint"`
	Version  string            `json:"version"`
	Fields   map[string]*Field `json:"fields"`
}

// Load resolves the schema for an endpoint at an API version from the
// embedded schema store. Endpoint path separators map to underscores
// in the stored filenames (search/byterm → search_byterm.json).
func Load(version, endpoint string) (*Schema, error) {
	name := fmt.Sprintf("schemas/v%s/%s.json", version, strings.ReplaceAll(endpoint, "/", "_"))

	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, &ErrSchemaNotFound{Version: version, Endpoint: endpoint}
	}

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", name, err)
	}
	return &s, nil
}

// Endpoints lists every endpoint with a stored schema at a version.
func Endpoints(version string) ([]string, error) {
	entries, err := schemaFS.ReadDir("schemas/v" + version)
	if err != nil {
		return nil, fmt.Errorf("no schemas for version %s", version)
	}

	endpoints := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		endpoints = append(endpoints, strings.ReplaceAll(name, "_", "/"))
	}
	return endpoints, nil
}
