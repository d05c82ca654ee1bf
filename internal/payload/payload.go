// Package payload decodes request bodies into named field values.
//
// A decoded Payload is in one of three states:
//
//   - Absent: no body, or a body that failed to decode.
//   - Fields: a JSON object or URL-encoded form, addressable by name.
//   - Opaque: a body of some other content type, present but without fields.
//
// Callers go through Source, which decodes at most once per request.
package payload

// Kind is the decoded state of a request body.
type Kind int

const (
	KindAbsent Kind = iota
	KindFields
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindFields:
		return "fields"
	case KindOpaque:
		return "opaque"
	default:
		return "absent"
	}
}

// Reserved payload keys.
const (
	KeyForm     = "form"
	KeyRedirect = "redirect"
)

// Value is one submitted value rendered as text.
//
// IsString records whether the client sent a plain string. Numbers, booleans
// and lists are converted to text but keep IsString false.
type Value struct {
	Text     string
	IsString bool
}

// Payload is an immutable decoded request body.
type Payload struct {
	kind   Kind
	fields map[string]Value
}

// Absent returns the "no payload" sentinel.
func Absent() Payload {
	return Payload{kind: KindAbsent}
}

// FromFields builds a field payload. The map is copied.
func FromFields(fields map[string]Value) Payload {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}

	return Payload{kind: KindFields, fields: cp}
}

// FromStrings builds a field payload where every value is a plain string.
func FromStrings(fields map[string]string) Payload {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = Value{Text: v, IsString: true}
	}

	return Payload{kind: KindFields, fields: cp}
}

// Opaque wraps a body that could not be addressed by field name.
func Opaque() Payload {
	return Payload{kind: KindOpaque}
}

func (p Payload) Kind() Kind {
	return p.kind
}

// Present reports whether the request carried a usable body.
func (p Payload) Present() bool {
	return p.kind != KindAbsent
}

// Lookup returns the value submitted for name.
func (p Payload) Lookup(name string) (Value, bool) {
	v, ok := p.fields[name]

	return v, ok
}

// Len returns the number of decoded fields.
func (p Payload) Len() int {
	return len(p.fields)
}

// FormID returns the value of the reserved `form` key, or "".
func (p Payload) FormID() string {
	v, _ := p.Lookup(KeyForm)

	return v.Text
}

// Redirect returns the reserved `redirect` value when it was sent as a
// non-empty string.
func (p Payload) Redirect() (string, bool) {
	v, ok := p.Lookup(KeyRedirect)
	if !ok || !v.IsString || v.Text == "" {
		return "", false
	}

	return v.Text, true
}
