package navigation

import (
	"net/url"

	"github.com/goliatone/go-enrollform/pkg/model"
)

// Encode turns values into the query payload. Every scalar field is present,
// even when empty; terms contributes one entry per checked value.
func Encode(values model.Values) url.Values {
	query := make(url.Values, len(model.Fields()))
	for _, field := range model.Fields() {
		if field == model.FieldTerms {
			for _, term := range values.Terms {
				query.Add(field.String(), term)
			}
			continue
		}
		query.Set(field.String(), values.String(field))
	}
	return query
}

// Decode reads a payload produced by Encode. Unknown keys are ignored and
// missing keys keep their zero value.
func Decode(query url.Values) model.Values {
	var values model.Values
	for _, field := range model.Fields() {
		raw, ok := query[field.String()]
		if !ok {
			continue
		}
		if field == model.FieldTerms {
			_ = values.Set(field, raw)
			continue
		}
		_ = values.Set(field, query.Get(field.String()))
	}
	return values
}

// NewTarget builds the navigation target for values.
func NewTarget(path string, values model.Values) Target {
	if path == "" {
		path = DefaultTargetRoute
	}
	return Target{Path: path, Query: Encode(values)}
}
