package errs

import "fmt"

// DecodeKind names the step of body decoding that failed.
type DecodeKind string

const (
	DecodeBase64     DecodeKind = "base64"
	DecodeJSON       DecodeKind = "json"
	DecodeURLEncoded DecodeKind = "urlencoded"
)

// DecodeError reports a request body that could not be decoded.
//
// The pipeline never returns it to the client: the payload degrades to
// "absent" and the error is only logged for diagnostics.
type DecodeError struct {
	Kind DecodeKind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s body: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Notification channels.
const (
	ChannelEmail = "email"
	ChannelChat  = "chat"
)

// DispatchError reports a notification provider failure on one channel.
type DispatchError struct {
	Channel string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s notification: %v", e.Channel, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
