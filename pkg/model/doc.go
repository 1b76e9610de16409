// Package model defines the enrollment form: the fixed field set, the value
// record the controller mutates, and the FormModel descriptors renderers use
// to lay out inputs. Field names double as HTML input names and query keys,
// so they are stable identifiers rather than display text.
package model
