package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseValues decodes a JSON or YAML document of field values over the
// defaults. Keys must be field names; terms may be a list, a string or a
// boolean.
func ParseValues(data []byte) (Values, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Values{}, fmt.Errorf("model: values document is empty")
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = nil
		if yerr := yaml.Unmarshal(data, &raw); yerr != nil {
			return Values{}, fmt.Errorf("model: parse values: invalid JSON or YAML")
		}
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := DefaultValues()
	for _, key := range keys {
		field, err := ParseField(key)
		if err != nil {
			return Values{}, err
		}
		value := normalizeValue(raw[key])
		if err := values.Set(field, value); err != nil {
			return Values{}, fmt.Errorf("model: field %s: %w", field, err)
		}
	}
	return values, nil
}

// normalizeValue maps decoded documents onto what Values.Set accepts.
// Numbers become their decimal text, so a phone written unquoted survives.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, fmt.Sprint(normalizeValue(item)))
		}
		return out
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	default:
		return value
	}
}
