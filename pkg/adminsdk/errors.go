package adminsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedEnvelope reports a success transport response whose body was
// not the expected {code, msg, data} object shape.
var ErrMalformedEnvelope = errors.New("adminsdk: malformed response envelope")

// BusinessError is an application-level failure carried inside a success
// transport response (envelope code other than CodeSuccess).
type BusinessError struct {
	Code int
	Msg  string
}

func (e *BusinessError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("adminsdk: business error %d: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("adminsdk: business error %d", e.Code)
}

// ForcedLogout reports whether the code demands client-side session teardown.
func (e *BusinessError) ForcedLogout() bool { return isForcedLogoutCode(e.Code) }

// StatusError is a transport-level failure: an HTTP response arrived with a
// non-2xx status.
type StatusError struct {
	StatusCode int
	Msg        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("adminsdk: http %d: %s", e.StatusCode, e.Msg)
}

// User-visible notice texts produced by the gateway. One notice per
// rejected call; permission denials in the router are silent and never
// reach this layer.
const (
	noticeUnauthorized = "unauthorized, please sign in again"
	noticeForbidden    = "permission denied"
	noticeNotFound     = "requested resource does not exist"
	noticeServerError  = "internal server error"
	noticeNetwork      = "network unreachable, check your connection"
	noticeBadConfig    = "request configuration error"
	noticeBadShape     = "unexpected response shape from server"
	noticeDefault      = "request failed"
)

// statusNotice maps an HTTP status to its user notice. serverMsg, when
// present, wins for statuses without a dedicated text.
func statusNotice(status int, serverMsg string) string {
	switch status {
	case http.StatusUnauthorized:
		return noticeUnauthorized
	case http.StatusForbidden:
		return noticeForbidden
	case http.StatusNotFound:
		return noticeNotFound
	case http.StatusInternalServerError:
		return noticeServerError
	default:
		if serverMsg != "" {
			return serverMsg
		}
		return fmt.Sprintf("request failed with status %d", status)
	}
}
