package adminsdk

import (
	"bytes"
	"encoding/json"
)

// Business envelope codes. Every API response wraps {code, msg, data};
// anything other than CodeSuccess is an application-level error.
const (
	CodeSuccess = 20000

	// Forced-logout sentinels: the server has invalidated this session and
	// the client must tear it down.
	CodeInvalidToken    = 50008
	CodeConcurrentLogin = 50012
	CodeTokenExpired    = 50014
)

// userInfoPath is exempt from forced-logout handling so that a failing
// identity check can never trigger a teardown that would immediately
// re-check identity.
const userInfoPath = "/user/info"

type envelope struct {
	Code *int            `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func isForcedLogoutCode(code int) bool {
	switch code {
	case CodeInvalidToken, CodeConcurrentLogin, CodeTokenExpired:
		return true
	}
	return false
}

// decodeEnvelope parses body as a business envelope. A nil Code means the
// endpoint does not use the envelope convention and the raw body is the
// payload. A body that is not a JSON object is a malformed envelope.
func decodeEnvelope(body []byte) (*envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrMalformedEnvelope
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, ErrMalformedEnvelope
	}
	return &env, nil
}
