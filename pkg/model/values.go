package model

import "fmt"

// Values is the record of user-entered data. The field set is fixed; callers
// go through Get/Set when addressing fields by name.
type Values struct {
	Name         string   `json:"name" yaml:"name"`
	Email        string   `json:"email" yaml:"email"`
	Country      string   `json:"country" yaml:"country"`
	Terms        []string `json:"terms" yaml:"terms"`
	Phone        string   `json:"phone" yaml:"phone"`
	Organization string   `json:"organization" yaml:"organization"`
	Message      string   `json:"message" yaml:"message"`
}

// DefaultValues returns the initial state of a fresh form.
func DefaultValues() Values {
	return Values{Country: DefaultCountry}
}

// Clone returns a copy that shares no slices with v.
func (v Values) Clone() Values {
	out := v
	if len(v.Terms) > 0 {
		out.Terms = append([]string(nil), v.Terms...)
	} else {
		out.Terms = nil
	}
	return out
}

// Get returns the value stored for field. Terms is returned as []string, every
// other field as string.
func (v Values) Get(field Field) (any, error) {
	switch field {
	case FieldName:
		return v.Name, nil
	case FieldEmail:
		return v.Email, nil
	case FieldCountry:
		return v.Country, nil
	case FieldTerms:
		return append([]string(nil), v.Terms...), nil
	case FieldPhone:
		return v.Phone, nil
	case FieldOrganization:
		return v.Organization, nil
	case FieldMessage:
		return v.Message, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// IsZero reports whether no field carries a value, defaults included.
func (v Values) IsZero() bool {
	return v.Name == "" && v.Email == "" && v.Country == "" && len(v.Terms) == 0 &&
		v.Phone == "" && v.Organization == "" && v.Message == ""
}

// String returns the scalar value of field. Terms are reported as the first
// checked value, or "" when unchecked.
func (v Values) String(field Field) string {
	if field == FieldTerms {
		if len(v.Terms) == 0 {
			return ""
		}
		return v.Terms[0]
	}
	raw, err := v.Get(field)
	if err != nil {
		return ""
	}
	s, _ := raw.(string)
	return s
}

// Set stores value under field. Scalar fields accept a string, or a
// single-element []string as produced by url.Values. Terms accepts []string or
// a string, where "" means unchecked. Values are stored as given: no trimming
// or case folding.
func (v *Values) Set(field Field, value any) error {
	if field == FieldTerms {
		terms, err := termsValue(value)
		if err != nil {
			return err
		}
		v.Terms = terms
		return nil
	}

	s, err := scalarValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case FieldName:
		v.Name = s
	case FieldEmail:
		v.Email = s
	case FieldCountry:
		v.Country = s
	case FieldPhone:
		v.Phone = s
	case FieldOrganization:
		v.Organization = s
	case FieldMessage:
		v.Message = s
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func scalarValue(field Field, value any) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case []string:
		switch len(typed) {
		case 0:
			return "", nil
		case 1:
			return typed[0], nil
		}
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("%w: field %q does not accept %T", ErrInvalidValue, field, value)
}

func termsValue(value any) ([]string, error) {
	switch typed := value.(type) {
	case nil:
		return nil, nil
	case string:
		if typed == "" {
			return nil, nil
		}
		return []string{typed}, nil
	case []string:
		if len(typed) == 0 {
			return nil, nil
		}
		return append([]string(nil), typed...), nil
	case bool:
		if typed {
			return []string{TermsChecked}, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: field %q does not accept %T", ErrInvalidValue, FieldTerms, value)
	}
}
