package validation

import (
	"regexp"
	"strconv"
	"unicode/utf16"
)

const (
	RuleRequired  = "required"
	RuleMaxLength = "maxLength"
	RuleEmail     = "email"
)

// emailPattern is the WHATWG address shape also used by Yup.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Rule is a single constraint on a field. Length limits carry their bound in
// Params["value"].
type Rule struct {
	Kind    string            `json:"kind" yaml:"kind"`
	Params  map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Message string            `json:"message" yaml:"message"`
}

// Required fails on an empty string or an empty sequence.
func Required(message string) Rule {
	return Rule{Kind: RuleRequired, Message: message}
}

// MaxLength fails when a string holds more than n UTF-16 code units, the
// length browsers report for input values.
func MaxLength(n int, message string) Rule {
	return Rule{
		Kind:    RuleMaxLength,
		Params:  map[string]string{"value": strconv.Itoa(n)},
		Message: message,
	}
}

// Email fails when a non-empty string is not shaped like an address.
func Email(message string) Rule {
	return Rule{Kind: RuleEmail, Message: message}
}

// Check reports whether value satisfies the rule. Unknown kinds pass.
func (r Rule) Check(value any) bool {
	switch r.Kind {
	case RuleRequired:
		return !isEmpty(value)
	case RuleMaxLength:
		limit, err := strconv.Atoi(r.Params["value"])
		if err != nil {
			return true
		}
		s, _ := value.(string)
		return len(utf16.Encode([]rune(s))) <= limit
	case RuleEmail:
		s, _ := value.(string)
		if s == "" {
			return true
		}
		return emailPattern.MatchString(s)
	default:
		return true
	}
}

func isEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case []string:
		return len(typed) == 0
	default:
		return false
	}
}
