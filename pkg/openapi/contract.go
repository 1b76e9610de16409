package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contract.yaml
var contractYAML []byte

// ConfirmationOperationID names the operation that receives the submitted
// values, whatever path it is mounted on.
const ConfirmationOperationID = "showSuccess"

var (
	// ErrRouteNotFound is returned when the contract has no GET operation for
	// a path.
	ErrRouteNotFound = errors.New("openapi: route not found")
	// ErrOperationNotFound is returned when no GET operation has the given id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
)

// Contract wraps the loaded and validated document.
type Contract struct {
	doc *openapi3.T
}

// YAML returns the embedded contract source.
func YAML() []byte {
	return append([]byte(nil), contractYAML...)
}

// Load parses and validates the embedded contract.
func Load(ctx context.Context) (*Contract, error) {
	return LoadFromData(ctx, contractYAML)
}

// LoadFromData parses and validates a contract document. External references
// are not followed.
func LoadFromData(ctx context.Context, data []byte) (*Contract, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	return &Contract{doc: doc}, nil
}

// Document exposes the underlying kin-openapi document.
func (c *Contract) Document() *openapi3.T {
	return c.doc
}

// JSON renders the contract as indented JSON.
func (c *Contract) JSON() ([]byte, error) {
	payload, err := json.MarshalIndent(c.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	return payload, nil
}

// OperationIDs lists operation ids keyed by "METHOD path".
func (c *Contract) OperationIDs() map[string]string {
	out := make(map[string]string)
	for path, item := range c.doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			out[strings.ToUpper(method)+" "+path] = operation.OperationID
		}
	}
	return out
}

// QueryParameters returns the query parameter names of GET path in
// declaration order.
func (c *Contract) QueryParameters(path string) ([]string, error) {
	params, err := c.queryParameters(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.Name)
	}
	return names, nil
}

// ValidateQuery checks a query against the GET parameters of path: required
// parameters must be present and every value must satisfy its schema.
// Unknown keys are ignored.
func (c *Contract) ValidateQuery(path string, query url.Values) error {
	operation, err := c.getOperation(path)
	if err != nil {
		return err
	}
	return validateQuery(path, operation, query)
}

// ValidateOperationQuery is ValidateQuery for the GET operation with the
// given operation id.
func (c *Contract) ValidateOperationQuery(operationID string, query url.Values) error {
	operation, err := c.operationByID(operationID)
	if err != nil {
		return err
	}
	return validateQuery(operationID, operation, query)
}

func validateQuery(label string, operation *openapi3.Operation, query url.Values) error {
	var problems []string
	for _, param := range operationQuery(operation) {
		raw, ok := query[param.Name]
		if !ok {
			if param.Required {
				problems = append(problems, fmt.Sprintf("%s: required", param.Name))
			}
			continue
		}
		if param.Schema == nil || param.Schema.Value == nil {
			continue
		}
		if err := param.Schema.Value.VisitJSON(queryValue(param.Schema.Value, raw)); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", param.Name, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("openapi: query for %s does not match contract: %s", label, strings.Join(problems, "; "))
	}
	return nil
}

func (c *Contract) getOperation(path string) (*openapi3.Operation, error) {
	item := c.doc.Paths.Value(path)
	if item == nil || item.Get == nil {
		return nil, fmt.Errorf("%w: GET %s", ErrRouteNotFound, path)
	}
	return item.Get, nil
}

func (c *Contract) operationByID(operationID string) (*openapi3.Operation, error) {
	for _, item := range c.doc.Paths.Map() {
		if item != nil && item.Get != nil && item.Get.OperationID == operationID {
			return item.Get, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, operationID)
}

func (c *Contract) queryParameters(path string) ([]*openapi3.Parameter, error) {
	operation, err := c.getOperation(path)
	if err != nil {
		return nil, err
	}
	return operationQuery(operation), nil
}

func operationQuery(operation *openapi3.Operation) []*openapi3.Parameter {
	var out []*openapi3.Parameter
	for _, ref := range operation.Parameters {
		if ref == nil || ref.Value == nil || ref.Value.In != openapi3.ParameterInQuery {
			continue
		}
		out = append(out, ref.Value)
	}
	return out
}

func queryValue(schema *openapi3.Schema, raw []string) any {
	if schema.Type != nil && schema.Type.Is(openapi3.TypeArray) {
		items := make([]any, 0, len(raw))
		for _, value := range raw {
			items = append(items, value)
		}
		return items
	}
	if len(raw) == 0 {
		return ""
	}
	return raw[0]
}
