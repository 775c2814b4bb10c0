package threads

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"threads-cli/internal/services"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(Config{AccessToken: "token-123", BaseURL: server.URL + "/v1.0/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func requireAuth(t *testing.T, r *http.Request) {
	t.Helper()
	if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
		t.Errorf("unexpected authorization header: %q", got)
	}
	if r.Header.Get("User-Agent") == "" {
		t.Error("expected user agent header")
	}
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New(Config{AccessToken: "  "})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "ACCESS_TOKEN") {
		t.Fatalf("expected hint about ACCESS_TOKEN, got %v", err)
	}
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	if _, err := New(Config{AccessToken: "t", BaseURL: "graph.threads.net"}); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	client, err := New(Config{AccessToken: "t"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.baseURL.String() != defaultBaseURL {
		t.Fatalf("unexpected base url: %q", client.baseURL)
	}
}

func TestCreatePostTwoStepPublish(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/v1.0/me/threads":
			if got := r.PostForm.Get("media_type"); got != "TEXT" {
				t.Errorf("unexpected media_type: %q", got)
			}
			if got := r.PostForm.Get("text"); got != "Hello & welcome" {
				t.Errorf("unexpected text: %q", got)
			}
			w.Write([]byte(`{"id":"container-1"}`))
		case "/v1.0/me/threads_publish":
			if got := r.PostForm.Get("creation_id"); got != "container-1" {
				t.Errorf("unexpected creation_id: %q", got)
			}
			w.Write([]byte(`{"id":"post-9"}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	id, err := client.CreatePost(context.Background(), "Hello & welcome")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if id != "post-9" {
		t.Fatalf("unexpected post id: %q", id)
	}
	if len(calls) != 2 {
		t.Fatalf("expected two calls, got %v", calls)
	}
}

func TestCreatePostValidatesBeforeRequest(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	if _, err := client.CreatePost(context.Background(), "   "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty text, got %v", err)
	}
	if _, err := client.CreatePost(context.Background(), strings.Repeat("a", 501)); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for long text, got %v", err)
	}
	if called {
		t.Fatal("expected no request for invalid input")
	}
}

func TestCreatePostAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190,"fbtrace_id":"abc"}}`))
	})

	_, err := client.CreatePost(context.Background(), "hi")
	if !errors.Is(err, services.ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Code != 190 || apiErr.TraceID != "abc" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if !apiErr.Unauthorized() {
		t.Fatal("expected unauthorized")
	}
	if !strings.Contains(err.Error(), "Invalid OAuth access token") {
		t.Fatalf("expected API message in error, got %v", err)
	}
}

func TestCreatePostPublishFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1.0/me/threads" {
			w.Write([]byte(`{"id":"container-1"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.CreatePost(context.Background(), "hi")
	if !errors.Is(err, services.ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if !strings.Contains(err.Error(), "container-1") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected container id and body in error, got %v", err)
	}
}

func TestRateLimitedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetProfile(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if !apiErr.RateLimited() {
		t.Fatal("expected rate limited")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected rate limit hint, got %v", err)
	}
}

func TestTransportFailureIsRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client, err := New(Config{AccessToken: "t", BaseURL: base})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.GetProfile(context.Background()); !errors.Is(err, services.ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		if r.Method != http.MethodGet || r.URL.Path != "/v1.0/me" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("fields"); got != profileFields {
			t.Errorf("unexpected fields: %q", got)
		}
		w.Write([]byte(`{"id":"1","username":"gopher","name":"Go Pher","threads_biography":"digging"}`))
	})

	profile, err := client.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Username != "gopher" || profile.Name != "Go Pher" || profile.Biography != "digging" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestGetRecentPosts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		if r.URL.Path != "/v1.0/me/threads" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Errorf("unexpected limit: %q", got)
		}
		w.Write([]byte(`{"data":[{"id":"a","text":"first","timestamp":"2024-01-02T03:04:05+0000"},{"id":"b","text":"second"},{"id":"c"}],"paging":{}}`))
	})

	posts, err := client.GetRecentPosts(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetRecentPosts: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "a" || posts[1].Text != "second" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}

func TestGetRecentPostsLimitBounds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})
	for _, limit := range []int{0, -1, MaxRecentPostsLimit + 1} {
		if _, err := client.GetRecentPosts(context.Background(), limit); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("expected validation error for limit %d, got %v", limit, err)
		}
	}
}

func TestGetRecentPostsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	posts, err := client.GetRecentPosts(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetRecentPosts: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", posts)
	}
}
