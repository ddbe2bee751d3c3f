package pgsql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balanza-app/balanza/internal/core/domain"
)

func TestEncodeAssignment_ArrayShapeSortedByType(t *testing.T) {
	assignment := domain.CategoryAssignment{
		"Ingreso": domain.CategoryGain,
		"Caja":    domain.CategoryAsset,
	}

	raw, err := encodeAssignment(assignment)
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Caja", entries[0]["type"])
	assert.Equal(t, "asset", entries[0]["category"])
	assert.Equal(t, "Ingreso", entries[1]["type"])
	assert.Equal(t, "gain", entries[1]["category"])
}

func TestEncodeAssignment_EmptyIsEmptyArray(t *testing.T) {
	raw, err := encodeAssignment(domain.CategoryAssignment{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestDecodeAssignment_RoundTrip(t *testing.T) {
	assignment := domain.CategoryAssignment{
		"Caja":    domain.CategoryAsset,
		"Costo":   domain.CategoryLoss,
		"Ingreso": domain.CategoryGain,
	}

	raw, err := encodeAssignment(assignment)
	require.NoError(t, err)

	decoded, err := decodeAssignment(raw)
	require.NoError(t, err)
	assert.Equal(t, assignment, decoded)
}

func TestDecodeAssignment_RejectsMalformedDocument(t *testing.T) {
	_, err := decodeAssignment([]byte(`{"Caja":"asset"}`))
	assert.Error(t, err)
}

func TestDocID_Format(t *testing.T) {
	assert.Equal(t, "co-1_2024", docID("co-1", 2024))
}
