// Package navigation carries validated form values to the confirmation route.
// The controller only knows the Navigator interface; HTTP redirects, terminal
// output and test recorders are interchangeable implementations.
package navigation

import (
	"context"
	"net/url"
	"strings"
)

// DefaultTargetRoute is where a successful submission lands.
const DefaultTargetRoute = "/success"

// Target is a route plus the query payload handed to it.
type Target struct {
	Path  string
	Query url.Values
}

// URL renders the target as a relative URL.
func (t Target) URL() string {
	path := t.Path
	if path == "" {
		path = "/"
	}
	if len(t.Query) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + t.Query.Encode()
}

// Navigator performs the client-side route transition. No response is
// awaited beyond the returned error.
type Navigator interface {
	Navigate(ctx context.Context, target Target) error
}

// NavigatorFunc adapts a function into a Navigator.
type NavigatorFunc func(ctx context.Context, target Target) error

// Navigate calls fn.
func (fn NavigatorFunc) Navigate(ctx context.Context, target Target) error {
	return fn(ctx, target)
}

// Discard accepts every navigation and does nothing.
var Discard Navigator = NavigatorFunc(func(context.Context, Target) error { return nil })
