package payload_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/event"
	"github.com/deppfellow/form-handler/internal/payload"
)

func jsonEvent(body string) event.Event {
	return event.Event{
		Headers: event.Headers{"Content-Type": "application/json"},
		Body:    body,
	}
}

func TestDecode_NoBodyIsAbsent(t *testing.T) {
	p, err := payload.Decode(event.Event{Headers: event.Headers{"Content-Type": "application/json"}})

	require.NoError(t, err)
	assert.Equal(t, payload.KindAbsent, p.Kind())
	assert.False(t, p.Present())
}

func TestDecode_JSON(t *testing.T) {
	p, err := payload.Decode(jsonEvent(`{"form":"contact","name":" A ","age":42,"opt":true,"tags":["a","b"],"gone":null}`))
	require.NoError(t, err)

	assert.Equal(t, payload.KindFields, p.Kind())
	assert.Equal(t, "contact", p.FormID())

	name, ok := p.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, payload.Value{Text: " A ", IsString: true}, name)

	age, _ := p.Lookup("age")
	assert.Equal(t, payload.Value{Text: "42"}, age)

	opt, _ := p.Lookup("opt")
	assert.Equal(t, "true", opt.Text)

	tags, _ := p.Lookup("tags")
	assert.Equal(t, payload.Value{Text: "a, b"}, tags)

	_, ok = p.Lookup("gone")
	assert.False(t, ok, "null values are absent")
}

func TestDecode_JSONContentTypeVariants(t *testing.T) {
	for _, ct := range []string{
		"application/json",
		"application/json; charset=utf-8",
		"Application/JSON",
	} {
		t.Run(ct, func(t *testing.T) {
			p, err := payload.Decode(event.Event{
				Headers: event.Headers{"content-type": ct},
				Body:    `{"form":"intake"}`,
			})
			require.NoError(t, err)
			assert.Equal(t, "intake", p.FormID())
		})
	}
}

func TestDecode_MalformedJSONDegradesToAbsent(t *testing.T) {
	for name, body := range map[string]string{
		"truncated": `{"form":"contact"`,
		"array":     `["contact"]`,
		"trailing":  `{"form":"contact"} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			p, err := payload.Decode(jsonEvent(body))

			assert.False(t, p.Present())

			var decodeErr *errs.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, errs.DecodeJSON, decodeErr.Kind)
		})
	}
}

func TestDecode_URLEncoded(t *testing.T) {
	p, err := payload.Decode(event.Event{
		Headers: event.Headers{"Content-Type": "application/x-www-form-urlencoded"},
		Body:    "form=intake&name=Tobias+F%C3%BCnke&redirect=https%3A%2F%2Fyahoo.com&pet=cat&pet=dog",
	})
	require.NoError(t, err)

	assert.Equal(t, "intake", p.FormID())

	name, _ := p.Lookup("name")
	assert.Equal(t, "Tobias Fünke", name.Text)

	redirect, ok := p.Redirect()
	require.True(t, ok)
	assert.Equal(t, "https://yahoo.com", redirect)

	pets, _ := p.Lookup("pet")
	assert.Equal(t, payload.Value{Text: "cat, dog"}, pets)
}

func TestDecode_MalformedURLEncodingDegradesToAbsent(t *testing.T) {
	p, err := payload.Decode(event.Event{
		Headers: event.Headers{"Content-Type": "application/x-www-form-urlencoded"},
		Body:    "name=%zz",
	})

	assert.False(t, p.Present())
	assert.Error(t, err)
}

func TestDecode_Base64(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte(`{"form":"support"}`))

	ev := jsonEvent(body)
	ev.IsBase64Encoded = true

	p, err := payload.Decode(ev)
	require.NoError(t, err)
	assert.Equal(t, "support", p.FormID())
}

func TestDecode_BadBase64(t *testing.T) {
	ev := jsonEvent("%%%not-base64")
	ev.IsBase64Encoded = true

	p, err := payload.Decode(ev)

	assert.False(t, p.Present())

	var decodeErr *errs.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, errs.DecodeBase64, decodeErr.Kind)
}

func TestDecode_OtherContentTypeIsOpaque(t *testing.T) {
	for name, headers := range map[string]event.Headers{
		"text":    {"Content-Type": "text/plain"},
		"missing": {},
	} {
		t.Run(name, func(t *testing.T) {
			p, err := payload.Decode(event.Event{Headers: headers, Body: "form=intake"})
			require.NoError(t, err)

			assert.Equal(t, payload.KindOpaque, p.Kind())
			assert.True(t, p.Present())
			assert.Zero(t, p.Len())
			assert.Empty(t, p.FormID())
		})
	}
}

func TestPayload_RedirectMustBeNonEmptyString(t *testing.T) {
	p := payload.FromFields(map[string]payload.Value{
		"redirect": {Text: "1"},
	})
	_, ok := p.Redirect()
	assert.False(t, ok)

	p = payload.FromStrings(map[string]string{"redirect": ""})
	_, ok = p.Redirect()
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, payload.FamilyJSON, payload.Classify("application/json;charset=UTF-8"))
	assert.Equal(t, payload.FamilyForm, payload.Classify("application/x-www-form-urlencoded"))
	assert.Equal(t, payload.FamilyOther, payload.Classify("multipart/form-data; boundary=x"))
	assert.Equal(t, payload.FamilyOther, payload.Classify(""))
}
