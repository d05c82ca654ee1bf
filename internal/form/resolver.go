package form

import (
	"strings"

	"github.com/deppfellow/form-handler/internal/payload"
)

// ResolutionState tells which form, if any, a request addresses.
type ResolutionState int

const (
	// NoID means neither the payload nor the path named a form.
	NoID ResolutionState = iota
	// InvalidID means a form was named but is not registered.
	InvalidID
	// Resolved means a registered form was found.
	Resolved
)

func (s ResolutionState) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case InvalidID:
		return "invalid_id"
	default:
		return "no_id"
	}
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	State ResolutionState
	// ID is the candidate identifier; empty for NoID.
	ID string
	// Form is set only when State is Resolved.
	Form *Definition
}

// HasID reports whether any identifier was extracted, valid or not.
func (r Resolution) HasID() bool {
	return r.State != NoID
}

const pathPrefix = "form"

// Resolve determines the form addressed by a request.
//
// The `form` payload key wins over the path; the path must look like
// /form/{id}. An absent payload never resolves.
func (r *Registry) Resolve(p payload.Payload, path string) Resolution {
	if !p.Present() {
		return Resolution{State: NoID}
	}

	id := p.FormID()
	if id == "" {
		id = idFromPath(path)
	}

	if id == "" {
		return Resolution{State: NoID}
	}

	def, ok := r.Lookup(id)
	if !ok {
		return Resolution{State: InvalidID, ID: id}
	}

	return Resolution{State: Resolved, ID: id, Form: def}
}

func idFromPath(path string) string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	if len(segments) >= 2 && segments[0] == pathPrefix {
		return segments[1]
	}

	return ""
}
