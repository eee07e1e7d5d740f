package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/cordalabs/adminsdk/pkg/credstore"
	"github.com/cordalabs/adminsdk/pkg/reqid"
)

// HeaderRequestID carries the per-call correlation ID.
const HeaderRequestID = "X-Request-Id"

// RequestHook transforms an outbound request before it is sent. Hooks run
// in order: the built-in bearer and request-ID hooks first, then any hooks
// registered with WithRequestHook.
type RequestHook func(*http.Request) error

// Client is the single HTTP gateway all API calls pass through. It attaches
// the stored credential, unwraps the business envelope, classifies failures
// and produces user notices. It never retries; retries, if desired, are the
// caller's responsibility.
type Client struct {
	baseURL  string
	http     *http.Client
	creds    credstore.Store
	notifier Notifier
	nav      Navigator
	log      *slog.Logger
	limiter  *rate.Limiter
	hooks    []RequestHook

	refetchAfterLogin bool

	mu             sync.Mutex
	onForcedLogout func()
	confirming     bool
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCredentials sets the credential store read before every request.
func WithCredentials(s credstore.Store) Option {
	return func(c *Client) { c.creds = s }
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.nav = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRateLimit throttles outbound calls. This is a courtesy limiter for
// chatty hosts, not a retry mechanism.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithRequestHook appends a custom request transform to the pipeline.
func WithRequestHook(h RequestHook) Option {
	return func(c *Client) { c.hooks = append(c.hooks, h) }
}

// WithRefetchAfterLogin makes Session.Login re-fetch the profile from
// /user/info after a successful login instead of trusting the login
// response alone.
func WithRefetchAfterLogin() Option {
	return func(c *Client) { c.refetchAfterLogin = true }
}

// New creates a gateway client for the API at baseURL. Without options it
// uses an in-memory credential store and discards notices, which suits
// tests; real hosts supply WithCredentials and WithNotifier.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		http:     &http.Client{Timeout: 30 * time.Second},
		creds:    credstore.NewMemory(),
		notifier: NopNotifier{},
		nav:      NopNavigator{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.hooks = append([]RequestHook{c.attachBearer, attachRequestID}, c.hooks...)
	return c
}

// Credentials returns the credential store this client reads from.
func (c *Client) Credentials() credstore.Store { return c.creds }

// SetForcedLogoutHandler installs the teardown invoked after the user
// acknowledges a forced logout. The session store registers itself here.
func (c *Client) SetForcedLogoutHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onForcedLogout = fn
}

// attachBearer reads the credential store and, when a credential exists,
// attaches it as a bearer token. A store read failure downgrades the call
// to unauthenticated rather than failing it.
func (c *Client) attachBearer(req *http.Request) error {
	tok, err := c.creds.Get(req.Context())
	if err != nil {
		c.log.Warn("credential read failed, sending unauthenticated", "error", err)
		return nil
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return nil
}

func attachRequestID(req *http.Request) error {
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, reqid.New())
	}
	return nil
}

// do performs one API call and returns the unwrapped payload.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
) (json.RawMessage, error) {
	if c.limiter != nil {
		// Context cancellation during the wait propagates without a user
		// notice; the user asked for it.
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		c.notifier.Error(noticeBadConfig)
		return nil, fmt.Errorf("adminsdk: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, hook := range c.hooks {
		if err := hook(req); err != nil {
			c.notifier.Error(noticeBadConfig)
			return nil, fmt.Errorf("adminsdk: request hook: %w", err)
		}
	}

	log := c.log.With("method", method, "path", path, "req_id", req.Header.Get(HeaderRequestID))
	log.DebugContext(ctx, "api request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WarnContext(ctx, "api transport failure", "error", err)
		c.notifier.Error(noticeNetwork)
		return nil, fmt.Errorf("adminsdk: send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WarnContext(ctx, "api response read failure", "error", err)
		c.notifier.Error(noticeNetwork)
		return nil, fmt.Errorf("adminsdk: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.rejectStatus(ctx, log, resp.StatusCode, raw)
	}
	return c.unwrap(ctx, log, path, raw)
}

// rejectStatus handles transport-level failures. 401 additionally clears
// the credential and jumps to the login screen; every other status only
// produces its notice.
func (c *Client) rejectStatus(ctx context.Context, log *slog.Logger, status int, body []byte) error {
	var server struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	_ = json.Unmarshal(body, &server)
	msg := server.Message
	if msg == "" {
		msg = server.Detail
	}

	notice := statusNotice(status, msg)
	c.notifier.Error(notice)
	log.WarnContext(ctx, "api status failure", "status", status)

	if status == http.StatusUnauthorized {
		if err := c.creds.Clear(ctx); err != nil {
			log.WarnContext(ctx, "credential clear failed", "error", err)
		}
		c.nav.ToLogin()
	}

	return &StatusError{StatusCode: status, Msg: notice}
}

// unwrap handles the success-transport phase: envelope decode, business
// code classification and forced-logout dispatch.
func (c *Client) unwrap(ctx context.Context, log *slog.Logger, path string, body []byte) (json.RawMessage, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		c.notifier.Error(noticeBadShape)
		return nil, err
	}

	// Endpoints outside the envelope convention return their body as-is.
	if env.Code == nil {
		return json.RawMessage(body), nil
	}

	code := *env.Code
	if code == CodeSuccess {
		if len(bytes.TrimSpace(env.Data)) == 0 || bytes.Equal(env.Data, []byte("null")) {
			return json.RawMessage(body), nil
		}
		return env.Data, nil
	}

	msg := env.Msg
	if msg == "" {
		msg = noticeDefault
	}
	c.notifier.Error(msg)

	berr := &BusinessError{Code: code, Msg: msg}
	if berr.ForcedLogout() && path != userInfoPath {
		log.WarnContext(ctx, "forced logout signalled", "code", code)
		// The rejected call does not wait for the user's acknowledgment.
		go c.confirmForcedLogout()
	}
	return nil, berr
}

// confirmForcedLogout runs the blocking confirmation off the caller's
// goroutine, then tears the session down and reloads. Concurrent forced
// logouts collapse into one dialog.
func (c *Client) confirmForcedLogout() {
	c.mu.Lock()
	if c.confirming {
		c.mu.Unlock()
		return
	}
	c.confirming = true
	teardown := c.onForcedLogout
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.confirming = false
		c.mu.Unlock()
	}()

	ok := c.notifier.ConfirmLogout(
		"Confirm logout",
		"You have been logged out, you can cancel to stay on this page, or log in again",
	)
	if !ok {
		return
	}
	if teardown != nil {
		teardown()
	}
	c.nav.Reload()
}

// decodePayload unmarshals an unwrapped payload into target. A payload
// that does not match the expected shape counts as a malformed response.
func (c *Client) decodePayload(raw json.RawMessage, target any) error {
	if target == nil || raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		c.notifier.Error(noticeBadShape)
		return fmt.Errorf("adminsdk: decode payload: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.decodePayload(raw, target)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, target any) error {
	body, err := encodeJSON(payload)
	if err != nil {
		c.notifier.Error(noticeBadConfig)
		return err
	}
	raw, err := c.do(ctx, http.MethodPost, path, nil, body, "application/json")
	if err != nil {
		return err
	}
	return c.decodePayload(raw, target)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, target any) error {
	raw, err := c.do(
		ctx,
		http.MethodPost,
		path,
		nil,
		strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded",
	)
	if err != nil {
		return err
	}
	return c.decodePayload(raw, target)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, target any) error {
	body, err := encodeJSON(payload)
	if err != nil {
		c.notifier.Error(noticeBadConfig)
		return err
	}
	raw, err := c.do(ctx, http.MethodPut, path, nil, body, "application/json")
	if err != nil {
		return err
	}
	return c.decodePayload(raw, target)
}

func (c *Client) deleteCall(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

func encodeJSON(payload any) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("adminsdk: encode request body: %w", err)
	}
	return bytes.NewReader(buf), nil
}
