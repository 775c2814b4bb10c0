package testsupport

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ThreadsServer is an in-memory stand-in for the Threads Graph API. It
// accepts the endpoints threads.Client calls and records published text.
type ThreadsServer struct {
	*httptest.Server

	// Token is the bearer token requests must carry.
	Token string

	mu         sync.Mutex
	containers map[string]string
	published  []string
	failNext   int
}

// NewThreadsServer starts a fake API that expects token and closes it when
// the test ends.
func NewThreadsServer(t testing.TB, token string) *ThreadsServer {
	t.Helper()

	s := &ThreadsServer{
		Token:      token,
		containers: make(map[string]string),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Published returns the text of every post published so far, oldest first.
func (s *ThreadsServer) Published() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.published...)
}

// FailNext makes the next n requests fail with a Graph API error envelope.
func (s *ThreadsServer) FailNext(n int) {
	s.mu.Lock()
	s.failNext = n
	s.mu.Unlock()
}

func (s *ThreadsServer) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Header.Get("Authorization") != "Bearer "+s.Token {
		writeGraphError(w, http.StatusUnauthorized, 190, "Invalid OAuth access token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext > 0 {
		s.failNext--
		writeGraphError(w, http.StatusInternalServerError, 2, "An unexpected error has occurred")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeGraphError(w, http.StatusBadRequest, 100, err.Error())
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/me"):
		fmt.Fprint(w, `{"id":"1001","username":"gopher","name":"Go Pher","threads_biography":"writes Go"}`)
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/me/threads"):
		fmt.Fprint(w, `{"data":[{"id":"p2","media_type":"TEXT_POST","text":"second post","timestamp":"2024-05-02T10:00:00+0000"},{"id":"p1","media_type":"TEXT_POST","text":"first post","timestamp":"2024-05-01T10:00:00+0000"}]}`)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/me/threads"):
		id := fmt.Sprintf("container-%d", len(s.containers)+1)
		s.containers[id] = r.PostForm.Get("text")
		fmt.Fprintf(w, `{"id":%q}`, id)
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/me/threads_publish"):
		text, ok := s.containers[r.PostForm.Get("creation_id")]
		if !ok {
			writeGraphError(w, http.StatusBadRequest, 100, "unknown creation_id")
			return
		}
		s.published = append(s.published, text)
		fmt.Fprintf(w, `{"id":"post-%d"}`, len(s.published))
	default:
		writeGraphError(w, http.StatusNotFound, 803, "unsupported endpoint "+r.URL.Path)
	}
}

func writeGraphError(w http.ResponseWriter, status, code int, message string) {
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":{"message":%q,"type":"OAuthException","code":%d,"fbtrace_id":"test"}}`, message, code)
}
