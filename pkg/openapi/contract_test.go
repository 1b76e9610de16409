package openapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/openapi"
	"github.com/goliatone/go-enrollform/pkg/testsupport"
)

func loadContract(t *testing.T) *openapi.Contract {
	t.Helper()
	contract, err := openapi.Load(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	return contract
}

func TestContractSuccessParametersMatchFields(t *testing.T) {
	contract := loadContract(t)

	got, err := contract.QueryParameters(navigation.DefaultTargetRoute)
	if err != nil {
		t.Fatalf("query parameters: %v", err)
	}

	var want []string
	for _, field := range model.Fields() {
		want = append(want, field.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parameters mismatch (-want +got):\n%s", diff)
	}
}

func TestContractOperationIDs(t *testing.T) {
	want := map[string]string{
		"GET /":              "showForm",
		"POST /":             "submitForm",
		"POST /api/validate": "validateForm",
		"GET /success":       "showSuccess",
	}
	if diff := cmp.Diff(want, loadContract(t).OperationIDs()); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateQueryAcceptsNavigationPayload(t *testing.T) {
	contract := loadContract(t)
	target := navigation.NewTarget("", testsupport.ValidValues())
	if err := contract.ValidateQuery(target.Path, target.Query); err != nil {
		t.Fatalf("expected payload to match contract: %v", err)
	}
}

func TestValidateQueryReportsViolations(t *testing.T) {
	contract := loadContract(t)
	query := url.Values{
		"name":         {strings.Repeat("a", 21)},
		"email":        {"ada@example.com"},
		"phone":        {"555"},
		"organization": {"Analytical"},
	}

	err := contract.ValidateQuery("/success", query)
	if err == nil {
		t.Fatalf("expected violations")
	}
	for _, want := range []string{"name:", "terms: required"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestValidateQueryUnknownRoute(t *testing.T) {
	err := loadContract(t).ValidateQuery("/nowhere", url.Values{})
	if !errors.Is(err, openapi.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestValidateOperationQueryIgnoresMountPath(t *testing.T) {
	contract := loadContract(t)
	target := navigation.NewTarget("/thanks", testsupport.ValidValues())

	if err := contract.ValidateOperationQuery(openapi.ConfirmationOperationID, target.Query); err != nil {
		t.Fatalf("expected payload to match confirmation operation: %v", err)
	}
	if err := contract.ValidateOperationQuery(openapi.ConfirmationOperationID, url.Values{"name": {"Ada"}}); err == nil {
		t.Fatalf("expected missing parameters to be reported")
	}
}

func TestValidateOperationQueryUnknownOperation(t *testing.T) {
	err := loadContract(t).ValidateOperationQuery("showNothing", url.Values{})
	if !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected ErrOperationNotFound, got %v", err)
	}
}

func TestContractJSON(t *testing.T) {
	payload, err := loadContract(t).JSON()
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", doc["openapi"])
	}
}

func TestLoadFromDataRejectsEmpty(t *testing.T) {
	if _, err := openapi.LoadFromData(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if len(openapi.YAML()) == 0 {
		t.Fatalf("expected embedded contract")
	}
}
