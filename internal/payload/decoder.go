package payload

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/elnormous/contenttype"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/event"
)

var (
	jsonMediaType = contenttype.NewMediaType("application/json")
	formMediaType = contenttype.NewMediaType("application/x-www-form-urlencoded")
)

const listSeparator = ", "

// Family classifies a Content-Type header value.
type Family int

const (
	FamilyOther Family = iota
	FamilyJSON
	FamilyForm
)

// Classify maps a Content-Type header to the body family it announces.
// Parameters such as charset are ignored. Headers contenttype cannot parse
// fall back to a case-insensitive prefix match.
func Classify(contentType string) Family {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if ct == "" {
		return FamilyOther
	}

	mediaType := contenttype.NewMediaType(ct)
	if mediaType.Type != "" {
		switch {
		case mediaType.Matches(jsonMediaType):
			return FamilyJSON
		case mediaType.Matches(formMediaType):
			return FamilyForm
		}
	}

	switch {
	case strings.HasPrefix(ct, "application/json"):
		return FamilyJSON
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		return FamilyForm
	default:
		return FamilyOther
	}
}

// Decode extracts the payload of ev.
//
// A decode failure never aborts the request: the payload degrades to Absent
// and the *errs.DecodeError is returned for the caller to log.
func Decode(ev event.Event) (Payload, error) {
	if ev.Body == "" {
		return Absent(), nil
	}

	body := ev.Body
	if ev.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return Absent(), &errs.DecodeError{Kind: errs.DecodeBase64, Err: err}
		}
		body = string(raw)
	}

	switch Classify(ev.ContentType()) {
	case FamilyJSON:
		fields, err := decodeJSON(body)
		if err != nil {
			return Absent(), &errs.DecodeError{Kind: errs.DecodeJSON, Err: err}
		}
		return Payload{kind: KindFields, fields: fields}, nil

	case FamilyForm:
		fields, err := decodeForm(body)
		if err != nil {
			return Absent(), &errs.DecodeError{Kind: errs.DecodeURLEncoded, Err: err}
		}
		return Payload{kind: KindFields, fields: fields}, nil

	default:
		return Opaque(), nil
	}
}

func decodeJSON(body string) (map[string]Value, error) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	// A second value means trailing garbage after the document.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON document")
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", doc)
	}

	fields := make(map[string]Value, len(obj))
	for key, raw := range obj {
		if v, ok := jsonValue(raw); ok {
			fields[key] = v
		}
	}

	return fields, nil
}

// jsonValue renders a decoded JSON value as text. null counts as absent.
func jsonValue(raw any) (Value, bool) {
	switch v := raw.(type) {
	case nil:
		return Value{}, false
	case string:
		return Value{Text: v, IsString: true}, true
	case json.Number:
		return Value{Text: v.String()}, true
	case bool:
		if v {
			return Value{Text: "true"}, true
		}
		return Value{Text: "false"}, true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if iv, ok := jsonValue(item); ok {
				parts = append(parts, iv.Text)
			}
		}
		return Value{Text: strings.Join(parts, listSeparator)}, true
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return Value{}, false
		}
		return Value{Text: strings.TrimSpace(buf.String())}, true
	}
}

func decodeForm(body string) (map[string]Value, error) {
	values, err := url.ParseQuery(body)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]Value, len(values))
	for key, vs := range values {
		if len(vs) == 1 {
			fields[key] = Value{Text: vs[0], IsString: true}
			continue
		}
		fields[key] = Value{Text: strings.Join(vs, listSeparator)}
	}

	return fields, nil
}
