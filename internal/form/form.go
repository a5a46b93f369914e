package form

import (
	"errors"
	"fmt"
	"time"
)

// FieldID names an input on a form.
type FieldID string

const (
	FieldUsername FieldID = "username"
	FieldEmail    FieldID = "email"
	FieldPassword FieldID = "password"
)

// ErrUnknownField is returned when an operation names a field the form
// does not have.
var ErrUnknownField = errors.New("unknown field")

// Field describes one input.
type Field struct {
	ID     FieldID
	Label  string
	Secret bool
	Value  string
}

// LoginFields are the inputs of the login screen.
func LoginFields() []Field {
	return []Field{
		{ID: FieldEmail, Label: "Email"},
		{ID: FieldPassword, Label: "Password", Secret: true},
	}
}

// RegisterFields are the inputs of the register screen.
func RegisterFields() []Field {
	return []Field{
		{ID: FieldUsername, Label: "Username"},
		{ID: FieldEmail, Label: "Email"},
		{ID: FieldPassword, Label: "Password", Secret: true},
	}
}

// Form holds the current text of each field plus one label animator per
// field. It lives exactly as long as the screen that owns it.
//
// Every value change and every focus change retargets the affected field's
// animator with hasContent = value != "". Focus alone never floats a label.
type Form struct {
	fields  []Field
	index   map[FieldID]int
	labels  map[FieldID]*Animator
	focused FieldID
}

// New builds a form over fields, in display order.
func New(fields []Field) *Form {
	f := &Form{
		fields: make([]Field, len(fields)),
		index:  make(map[FieldID]int, len(fields)),
		labels: make(map[FieldID]*Animator, len(fields)),
	}
	copy(f.fields, fields)
	for i, field := range f.fields {
		f.index[field.ID] = i
		a := NewAnimator()
		// Prefilled values start floated, like a screen mounted with state.
		if field.Value != "" {
			a.to, a.from = 1, 1
		}
		f.labels[field.ID] = a
	}
	return f
}

// Fields returns a copy of the fields in display order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Has reports whether the form contains id.
func (f *Form) Has(id FieldID) bool {
	_, ok := f.index[id]
	return ok
}

// Value returns the current text of id.
func (f *Form) Value(id FieldID) string {
	if i, ok := f.index[id]; ok {
		return f.fields[i].Value
	}
	return ""
}

// Set replaces the text of id and retargets its label.
func (f *Form) Set(id FieldID, value string, now time.Time) error {
	i, ok := f.index[id]
	if !ok {
		return fmt.Errorf("set %q: %w", id, ErrUnknownField)
	}
	f.fields[i].Value = value
	f.labels[id].Retarget(value != "", now)
	return nil
}

// Focus moves focus to id. Both the field losing focus and the field gaining
// it are retargeted from their content.
func (f *Form) Focus(id FieldID, now time.Time) error {
	if _, ok := f.index[id]; !ok {
		return fmt.Errorf("focus %q: %w", id, ErrUnknownField)
	}
	if f.focused == id {
		return nil
	}
	f.Blur(now)
	f.focused = id
	f.retarget(id, now)
	return nil
}

// Blur removes focus from whichever field has it.
func (f *Form) Blur(now time.Time) {
	if f.focused == "" {
		return
	}
	prev := f.focused
	f.focused = ""
	f.retarget(prev, now)
}

// Focused returns the focused field, or "" when none is.
func (f *Form) Focused() FieldID {
	return f.focused
}

func (f *Form) retarget(id FieldID, now time.Time) {
	f.labels[id].Retarget(f.Value(id) != "", now)
}

// Progress returns the label progress of id at now.
func (f *Form) Progress(id FieldID, now time.Time) float64 {
	if a, ok := f.labels[id]; ok {
		return a.Progress(now)
	}
	return 0
}

// Label returns the interpolated label style of id at now.
func (f *Form) Label(id FieldID, now time.Time) LabelStyle {
	return StyleAt(f.Progress(id, now))
}

// Animating reports whether any label is still mid-tween.
func (f *Form) Animating(now time.Time) bool {
	for _, a := range f.labels {
		if !a.Settled(now) {
			return true
		}
	}
	return false
}

// Values returns a snapshot of every field's text.
func (f *Form) Values() map[FieldID]string {
	out := make(map[FieldID]string, len(f.fields))
	for _, field := range f.fields {
		out[field.ID] = field.Value
	}
	return out
}

// Missing returns the ids, in display order, whose value is empty.
func (f *Form) Missing() []FieldID {
	var missing []FieldID
	for _, field := range f.fields {
		if field.Value == "" {
			missing = append(missing, field.ID)
		}
	}
	return missing
}
