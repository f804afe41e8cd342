package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func testSchema() *Schema {
	return &Schema{
		Endpoint: "search/byterm",
		Version:  "1.0",
		Fields: map[string]*Field{
			"status": {Kind: KindString},
			"count":  {Kind: KindNumber},
			"feeds": {
				Kind: KindArray,
				Elem: &Field{
					Kind: KindObject,
					Fields: map[string]*Field{
						"id":    {Kind: KindNumber},
						"title": {Kind: KindString},
						"image": {Kind: KindString, Optional: true},
					},
				},
			},
		},
	}
}

func TestCheckPasses(t *testing.T) {
	doc := decode(t, `{
		"status": "true",
		"count": 1,
		"feeds": [{"id": 1, "title": "A Show"}]
	}`)

	assert.Empty(t, Check(doc, testSchema()))
}

func TestCheckMissingRequiredField(t *testing.T) {
	doc := decode(t, `{
		"status": "true",
		"feeds": []
	}`)

	errs := Check(doc, testSchema())
	require.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].Path)
	assert.Equal(t, "missing required field", errs[0].Message)
}

func TestCheckToleratesUnknownFields(t *testing.T) {
	doc := decode(t, `{
		"status": "true",
		"count": 0,
		"feeds": [],
		"nextByDate": 123,
		"someFutureField": {"whatever": true}
	}`)

	assert.Empty(t, Check(doc, testSchema()))
}

func TestCheckKindMismatch(t *testing.T) {
	doc := decode(t, `{
		"status": true,
		"count": "1",
		"feeds": []
	}`)

	errs := Check(doc, testSchema())
	require.Len(t, errs, 2)
	// Errors come back in sorted path order.
	assert.Equal(t, "count", errs[0].Path)
	assert.Equal(t, "expected number, got string", errs[0].Message)
	assert.Equal(t, "status", errs[1].Path)
	assert.Equal(t, "expected string, got boolean", errs[1].Message)
}

func TestCheckArrayElementPaths(t *testing.T) {
	doc := decode(t, `{
		"status": "true",
		"count": 2,
		"feeds": [
			{"id": 1, "title": "Good"},
			{"id": "2"}
		]
	}`)

	errs := Check(doc, testSchema())
	require.Len(t, errs, 2)
	assert.Equal(t, "feeds[1].id", errs[0].Path)
	assert.Equal(t, "feeds[1].title", errs[1].Path)
	assert.Equal(t, "missing required field", errs[1].Message)
}

func TestCheckCollectsAllMismatches(t *testing.T) {
	doc := decode(t, `{}`)

	errs := Check(doc, testSchema())
	assert.Len(t, errs, 3)
}

func TestCheckNullTreatedAsMissing(t *testing.T) {
	doc := decode(t, `{
		"status": "true",
		"count": null,
		"feeds": []
	}`)

	errs := Check(doc, testSchema())
	require.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].Path)
}

func TestCheckOptionalNullPasses(t *testing.T) {
	doc := decode(t, `{
		"status": "true",
		"count": 1,
		"feeds": [{"id": 1, "title": "A Show", "image": null}]
	}`)

	assert.Empty(t, Check(doc, testSchema()))
}
