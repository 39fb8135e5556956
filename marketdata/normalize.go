package marketdata

import (
	"github.com/PaesslerAG/jsonpath"

	"github.com/Trading-auto-pilot/astra-web-sub001/internal/errors"
	"github.com/Trading-auto-pilot/astra-web-sub001/internal/utils"
)

// Table is a normalized, chart-ready tabular structure.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// segmentShapes are the label/value path pairs tried against a survey
// document, in order. Providers disagree on the envelope but all of them
// boil down to parallel label and value series.
var segmentShapes = []struct {
	labels string
	values string
}{
	{"$.segments[*].label", "$.segments[*].value"},
	{"$.data.breakdown[*].name", "$.data.breakdown[*].weight"},
	{"$.results[*].segment", "$.results[*].revenue"},
}

// NormalizeSegments reshapes a heterogeneous segmentation survey document
// into a two-column table. The first shape whose label and value series
// both resolve to non-empty lists of equal length wins.
func NormalizeSegments(doc any) (Table, error) {
	for _, shape := range segmentShapes {
		labels, err := series(doc, shape.labels)
		if err != nil || len(labels) == 0 {
			continue
		}
		values, err := series(doc, shape.values)
		if err != nil || len(values) != len(labels) {
			continue
		}

		table := Table{Columns: []string{"segment", "value"}}
		for i := range labels {
			table.Rows = append(table.Rows, []string{labels[i], values[i]})
		}
		return table, nil
	}
	return Table{}, errors.Wrapf(errors.ErrMalformedData, "no known segmentation shape matched")
}

// series evaluates a jsonpath over doc and coerces the result to a string
// slice. jsonpath is never clear about whether it returns a list or a
// single value, so both are handled.
func series(doc any, path string) ([]string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, err
	}
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	out := make([]string, 0, len(jlist))
	for _, v := range jlist {
		s := utils.Stringify(v)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
