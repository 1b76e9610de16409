package validation_test

import (
	"testing"

	"github.com/goliatone/go-enrollform/pkg/validation"
)

func TestEmailRule(t *testing.T) {
	rule := validation.Email("Invalid email address")

	valid := []string{
		"",
		"ada@example.com",
		"first.last+tag@sub.example.co.uk",
		"user@localhost",
	}
	for _, candidate := range valid {
		if !rule.Check(candidate) {
			t.Errorf("expected %q to pass", candidate)
		}
	}

	invalid := []string{
		"plainaddress",
		"@example.com",
		"ada@",
		"ada@-example.com",
		"ada lovelace@example.com",
		"ada@example..com",
	}
	for _, candidate := range invalid {
		if rule.Check(candidate) {
			t.Errorf("expected %q to fail", candidate)
		}
	}
}

func TestRequiredRule(t *testing.T) {
	rule := validation.Required("required")

	if rule.Check("") || rule.Check([]string{}) || rule.Check(nil) {
		t.Fatalf("empty values should fail")
	}
	if !rule.Check(" ") || !rule.Check([]string{"checked"}) {
		t.Fatalf("non-empty values should pass")
	}
}

func TestMaxLengthRuleIgnoresMalformedBound(t *testing.T) {
	rule := validation.Rule{Kind: validation.RuleMaxLength, Params: map[string]string{"value": "many"}}
	if !rule.Check("anything at all") {
		t.Fatalf("malformed bound should not fail values")
	}
}
