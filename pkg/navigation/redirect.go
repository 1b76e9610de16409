package navigation

import (
	"context"
	"errors"
	"net/http"
)

// Redirect answers the current request with an HTTP redirect to the target.
// It is built per request and must not be reused.
type Redirect struct {
	Writer  http.ResponseWriter
	Request *http.Request
	// Status defaults to 303 so the browser follows with a GET.
	Status int
}

// Navigate writes the redirect response.
func (r Redirect) Navigate(ctx context.Context, target Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Writer == nil || r.Request == nil {
		return errors.New("navigation: redirect requires a response writer and request")
	}
	status := r.Status
	if status == 0 {
		status = http.StatusSeeOther
	}
	http.Redirect(r.Writer, r.Request, target.URL(), status)
	return nil
}
