package errs

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldErrors collects validation messages per field while remembering
// the order in which fields first failed.
//
// A field only appears once it has at least one message, so an empty
// FieldErrors means the submission is valid. The zero value and a nil
// pointer are both usable as "no errors" for every read method.
type FieldErrors struct {
	order    []string
	messages map[string][]string
}

// NewFieldErrors returns an empty collection.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{messages: make(map[string][]string)}
}

// Add appends message to field's list. Empty messages are ignored.
func (e *FieldErrors) Add(field, message string) {
	if message == "" {
		return
	}

	if e.messages == nil {
		e.messages = make(map[string][]string)
	}

	if _, ok := e.messages[field]; !ok {
		e.order = append(e.order, field)
	}

	e.messages[field] = append(e.messages[field], message)
}

// Empty reports whether no field has failed.
func (e *FieldErrors) Empty() bool {
	return e == nil || len(e.order) == 0
}

// Len returns the number of failed fields.
func (e *FieldErrors) Len() int {
	if e == nil {
		return 0
	}

	return len(e.order)
}

// Count returns the total number of messages across all fields.
func (e *FieldErrors) Count() int {
	if e == nil {
		return 0
	}

	n := 0
	for _, field := range e.order {
		n += len(e.messages[field])
	}

	return n
}

// Get returns a copy of the messages recorded for field.
func (e *FieldErrors) Get(field string) []string {
	if e == nil {
		return nil
	}

	msgs, ok := e.messages[field]
	if !ok {
		return nil
	}

	return append([]string(nil), msgs...)
}

// Fields returns the failed field names in first-failure order.
func (e *FieldErrors) Fields() []string {
	if e == nil {
		return nil
	}

	return append([]string(nil), e.order...)
}

// Messages flattens all messages, field by field, in order.
func (e *FieldErrors) Messages() []string {
	if e == nil {
		return nil
	}

	var out []string
	for _, field := range e.order {
		out = append(out, e.messages[field]...)
	}

	return out
}

// MarshalJSON encodes the collection as a JSON object whose keys keep
// their first-failure order.
func (e *FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	if e != nil {
		for i, field := range e.order {
			if i > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(field)
			if err != nil {
				return nil, err
			}

			value, err := json.Marshal(e.messages[field])
			if err != nil {
				return nil, err
			}

			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Error makes *FieldErrors usable as an error value, naming the failed fields.
func (e *FieldErrors) Error() string {
	return "validation failed: " + strings.Join(e.Fields(), ", ")
}
