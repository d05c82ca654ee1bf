package payload

import (
	"sync"

	"github.com/deppfellow/form-handler/internal/event"
)

// Source lazily decodes the body of one request and caches the result.
//
// Every call to Payload after the first returns the same value without
// decoding again.
type Source struct {
	ev     event.Event
	decode func(event.Event) (Payload, error)

	once    sync.Once
	payload Payload
	err     error
}

// NewSource returns a Source for ev.
func NewSource(ev event.Event) *Source {
	return &Source{ev: ev, decode: Decode}
}

// Payload returns the decoded payload, decoding on first use.
func (s *Source) Payload() Payload {
	s.once.Do(func() {
		s.payload, s.err = s.decode(s.ev)
	})

	return s.payload
}

// Err returns the decode error observed by Payload, if any.
func (s *Source) Err() error {
	s.Payload()

	return s.err
}
