package testsupport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FeedServer serves one delimited body per collection key and records the
// requests it receives. Unknown keys answer 404.
type FeedServer struct {
	*httptest.Server

	mu     sync.Mutex
	bodies map[string]string
	status map[string]int
	hits   map[string]int
	agents []string
	ids    []string
}

// NewFeedServer starts a server seeded with bodies and closes it on cleanup.
func NewFeedServer(t testing.TB, bodies map[string]string) *FeedServer {
	t.Helper()

	fs := &FeedServer{
		bodies: make(map[string]string, len(bodies)),
		status: make(map[string]int),
		hits:   make(map[string]int),
	}
	for key, body := range bodies {
		fs.bodies[key] = body
	}
	fs.Server = httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *FeedServer) serve(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/")

	fs.mu.Lock()
	fs.hits[key]++
	fs.agents = append(fs.agents, r.Header.Get("User-Agent"))
	fs.ids = append(fs.ids, r.Header.Get("X-Request-ID"))
	body, known := fs.bodies[key]
	status := fs.status[key]
	fs.mu.Unlock()

	switch {
	case status != 0:
		w.WriteHeader(status)
	case !known:
		http.NotFound(w, r)
	default:
		_, _ = w.Write([]byte(body))
	}
}

// SetBody serves body for key with a 200.
func (fs *FeedServer) SetBody(key, body string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.bodies[key] = body
	delete(fs.status, key)
}

// SetStatus makes key answer with status and an empty body.
func (fs *FeedServer) SetStatus(key string, status int) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.status[key] = status
}

// Hits returns how many requests key has received.
func (fs *FeedServer) Hits(key string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.hits[key]
}

// UserAgents returns the User-Agent header of every request, in order.
func (fs *FeedServer) UserAgents() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.agents...)
}

// RequestIDs returns the X-Request-ID header of every request, in order.
func (fs *FeedServer) RequestIDs() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.ids...)
}
