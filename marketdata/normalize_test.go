package marketdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trading-auto-pilot/astra-web-sub001/internal/errors"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestNormalizeSegmentsLabelValueShape(t *testing.T) {
	doc := decode(t, `{
		"segments": [
			{"label": "iPhone", "value": 51.3},
			{"label": "Services", "value": 22.1},
			{"label": "Mac", "value": 10.4}
		]
	}`)

	table, err := NormalizeSegments(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"segment", "value"}, table.Columns)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"iPhone", "51.3"}, table.Rows[0])
	assert.Equal(t, []string{"Services", "22.1"}, table.Rows[1])
}

func TestNormalizeSegmentsBreakdownShape(t *testing.T) {
	doc := decode(t, `{
		"data": {
			"breakdown": [
				{"name": "Cloud", "weight": "38"},
				{"name": "Ads", "weight": "62"}
			]
		}
	}`)

	table, err := NormalizeSegments(doc)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Cloud", "38"}, table.Rows[0])
}

func TestNormalizeSegmentsResultsShape(t *testing.T) {
	doc := decode(t, `{
		"results": [
			{"segment": "EMEA", "revenue": 120.5},
			{"segment": "APAC", "revenue": 98}
		]
	}`)

	table, err := NormalizeSegments(doc)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"APAC", "98"}, table.Rows[1])
}

func TestNormalizeSegmentsMixedScalarTypes(t *testing.T) {
	// Providers mix numbers and strings for the same field.
	doc := decode(t, `{
		"segments": [
			{"label": "A", "value": "12.5"},
			{"label": "B", "value": 7}
		]
	}`)

	table, err := NormalizeSegments(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "12.5"}, table.Rows[0])
	assert.Equal(t, []string{"B", "7"}, table.Rows[1])
}

func TestNormalizeSegmentsUnknownShape(t *testing.T) {
	doc := decode(t, `{"something": "else"}`)

	_, err := NormalizeSegments(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedData))
}

func TestNormalizeSegmentsLengthMismatchRejected(t *testing.T) {
	// A label without a usable value must not silently shift rows.
	doc := decode(t, `{
		"segments": [
			{"label": "A", "value": 1},
			{"label": "B"}
		]
	}`)

	_, err := NormalizeSegments(doc)
	require.Error(t, err)
}
