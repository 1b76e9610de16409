// Package openapi publishes the HTTP contract of the enrollment form: the
// page, the validation endpoint and the confirmation route whose query
// parameters carry the submitted values. The contract is embedded and loaded
// with kin-openapi, which also checks navigation payloads against it.
package openapi
