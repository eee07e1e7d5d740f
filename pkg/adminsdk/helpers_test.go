package adminsdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures notices and answers logout confirmations.
type recordingNotifier struct {
	mu        sync.Mutex
	notices   []string
	confirms  int
	confirmOK bool
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, msg)
}

func (n *recordingNotifier) ConfirmLogout(_, _ string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirms++
	return n.confirmOK
}

func (n *recordingNotifier) Notices() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.notices...)
}

func (n *recordingNotifier) Confirms() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.confirms
}

// recordingNavigator counts whole-page navigations.
type recordingNavigator struct {
	mu      sync.Mutex
	toLogin int
	reloads int
}

func (n *recordingNavigator) ToLogin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toLogin++
}

func (n *recordingNavigator) Reload() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reloads++
}

func (n *recordingNavigator) ToLogins() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.toLogin
}

func (n *recordingNavigator) Reloads() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reloads
}

// writeEnvelope writes a business envelope response.
func writeEnvelope(t *testing.T, w http.ResponseWriter, code int, msg string, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"code": code,
		"msg":  msg,
		"data": data,
	})
	require.NoError(t, err)
}

// newTestClient builds a client against srv with recording collaborators.
func newTestClient(srv *httptest.Server, opts ...Option) (*Client, *recordingNotifier, *recordingNavigator) {
	notifier := &recordingNotifier{}
	nav := &recordingNavigator{}
	all := append([]Option{WithNotifier(notifier), WithNavigator(nav)}, opts...)
	return New(srv.URL, all...), notifier, nav
}

// newOfflineSession builds a session whose client points nowhere, for tests
// that never touch the network.
func newOfflineSession() *Session {
	return NewSession(New("http://127.0.0.1:1"))
}

// mintToken signs a short HS256 JWT like the backend issues.
func mintToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-signing-secret"))
	require.NoError(t, err)
	return token
}
