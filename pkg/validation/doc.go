// Package validation holds the declarative rule table for the enrollment form
// and the pure function that evaluates it. Nothing here keeps state: the same
// values always produce the same FieldErrors.
package validation
