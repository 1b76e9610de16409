// Package server exposes the enrollment form over HTTP with a chi router.
//
// Every request builds its own form.Controller: the page, the validation
// endpoint used by the page script on change and blur, the submit handler
// that redirects to the confirmation route, and the confirmation page itself.
// Requests are logged with zap, counted with Prometheus and traced with
// OpenTelemetry.
package server
