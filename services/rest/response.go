package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Envelope is the backend's uniform response shape. Login additionally
// carries the token at the top level, next to data.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIError is an application-level failure: the backend was reached and
// answered, but refused the operation.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsAPIError reports whether err (or its cause) is an application-level failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func decodeEnvelope(status int, data []byte) (*Envelope, error) {
	env := new(Envelope)
	if err := json.Unmarshal(data, env); err != nil {
		if status < 200 || status >= 300 {
			return nil, &APIError{Status: status, Message: http.StatusText(status)}
		}
		return nil, errors.Wrap(err, "decoding response envelope")
	}
	if status < 200 || status >= 300 || !env.Success {
		return nil, &APIError{Status: status, Message: env.Message}
	}
	return env, nil
}

// DecodeData unmarshals the envelope data into out; a nil out or empty data
// is a no-op.
func (env *Envelope) DecodeData(out interface{}) error {
	if out == nil || env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decoding response data")
	}
	return nil
}
