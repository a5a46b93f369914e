// Package form holds the state of the login and register forms: the text of
// each field, which field has focus, and the floating-label animation of every
// field.
//
// Each field owns an Animator. Any change to a field's text, and any focus
// change, retargets that field's animator toward 1 when the field has content
// and toward 0 when it is empty. Animators are advanced by the caller's clock:
//
//	f := form.New(form.LoginFields())
//	_ = f.Set(form.FieldEmail, "ada@example.com", time.Now())
//	style := f.Label(form.FieldEmail, time.Now())
//
// StyleAt turns a progress value into a LabelStyle (offset, font size and
// color blended between the resting and floated states).
package form
