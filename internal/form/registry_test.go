package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/form-handler/internal/form"
	"github.com/deppfellow/form-handler/internal/payload"
)

func testRegistry(t *testing.T) *form.Registry {
	t.Helper()

	reg, err := form.NewRegistry(
		&form.Definition{ID: "contact", Label: "Contact Form"},
		&form.Definition{ID: "intake", Label: "Project Brief"},
	)
	require.NoError(t, err)

	return reg
}

func TestNewRegistry_Rejects(t *testing.T) {
	_, err := form.NewRegistry(&form.Definition{ID: ""})
	require.Error(t, err)

	_, err = form.NewRegistry(&form.Definition{ID: "a"}, &form.Definition{ID: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistry_LookupIsCaseSensitive(t *testing.T) {
	reg := testRegistry(t)

	_, ok := reg.Lookup("contact")
	assert.True(t, ok)

	_, ok = reg.Lookup("Contact")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name      string
		payload   payload.Payload
		path      string
		wantState form.ResolutionState
		wantID    string
	}{
		{
			name:      "payload id",
			payload:   payload.FromStrings(map[string]string{"form": "contact"}),
			path:      "/",
			wantState: form.Resolved,
			wantID:    "contact",
		},
		{
			name:      "payload id wins over path",
			payload:   payload.FromStrings(map[string]string{"form": "contact"}),
			path:      "/form/intake",
			wantState: form.Resolved,
			wantID:    "contact",
		},
		{
			name:      "path id",
			payload:   payload.FromStrings(map[string]string{"name": "A"}),
			path:      "/form/intake",
			wantState: form.Resolved,
			wantID:    "intake",
		},
		{
			name:      "path with extra slashes",
			payload:   payload.FromStrings(map[string]string{"name": "A"}),
			path:      "//form//intake/",
			wantState: form.Resolved,
			wantID:    "intake",
		},
		{
			name:      "empty payload id falls back to path",
			payload:   payload.FromStrings(map[string]string{"form": ""}),
			path:      "/form/intake",
			wantState: form.Resolved,
			wantID:    "intake",
		},
		{
			name:      "unknown id",
			payload:   payload.FromStrings(map[string]string{"form": "foo"}),
			path:      "/",
			wantState: form.InvalidID,
			wantID:    "foo",
		},
		{
			name:      "wrong case",
			payload:   payload.FromStrings(map[string]string{"form": "Contact"}),
			path:      "/",
			wantState: form.InvalidID,
			wantID:    "Contact",
		},
		{
			name:      "no id anywhere",
			payload:   payload.FromStrings(map[string]string{"name": "A"}),
			path:      "/",
			wantState: form.NoID,
		},
		{
			name:      "path without id",
			payload:   payload.FromStrings(map[string]string{"name": "A"}),
			path:      "/form",
			wantState: form.NoID,
		},
		{
			name:      "other path prefix",
			payload:   payload.FromStrings(map[string]string{"name": "A"}),
			path:      "/forms/intake",
			wantState: form.NoID,
		},
		{
			name:      "absent payload never resolves",
			payload:   payload.Absent(),
			path:      "/form/intake",
			wantState: form.NoID,
		},
		{
			name:      "opaque payload uses the path",
			payload:   payload.Opaque(),
			path:      "/form/contact",
			wantState: form.Resolved,
			wantID:    "contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := reg.Resolve(tt.payload, tt.path)

			assert.Equal(t, tt.wantState, res.State)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, tt.wantState != form.NoID, res.HasID())

			if tt.wantState == form.Resolved {
				require.NotNil(t, res.Form)
				assert.Equal(t, tt.wantID, res.Form.ID)
			} else {
				assert.Nil(t, res.Form)
			}
		})
	}
}

func TestParseDerivation(t *testing.T) {
	for in, want := range map[string]form.Derivation{
		"":                   form.DeriveNone,
		"none":               form.DeriveNone,
		"client-ip":          form.DeriveClientIP,
		"getIpAddress":       form.DeriveClientIP,
		"user-agent":         form.DeriveUserAgent,
		"user-agent-summary": form.DeriveUserAgent,
		"getSystemDetails":   form.DeriveUserAgent,
	} {
		got, err := form.ParseDerivation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := form.ParseDerivation("geo")
	require.Error(t, err)
}
