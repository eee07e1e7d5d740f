// Package reqid generates lexicographically sortable request IDs used to
// correlate outbound API calls with server-side logs.
package reqid

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	once sync.Once
	gen  *generator
)

// generator produces ULIDs safely across goroutines using a monotonic
// entropy source, so IDs generated within the same millisecond still sort
// in creation order.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

func initGlobal() {
	gen = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a new request ID based on the current UTC time.
func New() string {
	once.Do(initGlobal)
	return gen.newAt(time.Now().UTC())
}

// NewAt returns a request ID at the provided time. Useful for tests.
func NewAt(t time.Time) string {
	once.Do(initGlobal)
	return gen.newAt(t.UTC())
}

// Valid reports whether s is a well-formed request ID.
func Valid(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := ulid.ParseStrict(s)
	return err == nil
}
