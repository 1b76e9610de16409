// Package form implements the enrollment form controller: it owns the field
// values, derives errors from the validation schema on every change, tracks
// which fields were touched, and hands valid values to a navigator on submit.
//
// A Controller follows the pristine -> touched -> validated -> submitted
// lifecycle of a single page. It is not safe for concurrent use; create one
// per page load or request.
//
//	ctrl := form.New(form.WithNavigator(nav))
//	_ = ctrl.SetFieldValue(model.FieldName, "Ada")
//	_ = ctrl.SetFieldTouched(model.FieldName)
//	ok, err := ctrl.Submit(ctx)
package form
