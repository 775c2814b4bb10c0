package threads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"threads-cli/internal/logging"
	"threads-cli/internal/services"
	"threads-cli/internal/textutil"
)

const (
	defaultBaseURL     = "https://graph.threads.net/v1.0"
	defaultUserAgent   = "threads-cli/dev"
	defaultHTTPTimeout = 30 * time.Second

	// MaxRecentPostsLimit is the largest page size the API accepts.
	MaxRecentPostsLimit = 100

	profileFields = "id,username,name,threads_profile_picture_url,threads_biography"
	postFields    = "id,media_type,text,permalink,timestamp"
)

// HTTPDoer describes the HTTP client used by the Threads client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config describes the Threads client configuration.
type Config struct {
	AccessToken string
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	HTTPClient  HTTPDoer
	Logger      *slog.Logger
}

// Client wraps the Threads REST API.
type Client struct {
	token     string
	userAgent string
	baseURL   *url.URL
	http      HTTPDoer
	logger    *slog.Logger
}

// Profile is the authenticated user's public profile.
type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"threads_profile_picture_url"`
	Biography         string `json:"threads_biography"`
}

// Post is a published thread as returned by the listing endpoint.
type Post struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
	Text      string `json:"text"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		return nil, services.Wrap(services.ErrConfiguration, "threads", "init", "access token is required (set ACCESS_TOKEN or api.access_token)", nil)
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "threads", "init", "parse base url", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, services.Wrap(services.ErrConfiguration, "threads", "init", fmt.Sprintf("base url %q is not absolute", base), nil)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		token:     token,
		userAgent: userAgent,
		baseURL:   baseURL,
		http:      client,
		logger:    logging.NewComponentLogger(cfg.Logger, "threads"),
	}, nil
}

// CreatePost publishes a text post and returns the published media ID. The
// API requires two calls: one creating a media container and one publishing it.
func (c *Client) CreatePost(ctx context.Context, text string) (string, error) {
	if c == nil {
		return "", errors.New("threads: client is nil")
	}
	if strings.TrimSpace(text) == "" {
		return "", services.Wrap(services.ErrValidation, "threads", "create post", "post text is empty", nil)
	}
	if n := textutil.PostLength(text); n > textutil.MaxPostLength {
		return "", services.Wrap(services.ErrValidation, "threads", "create post",
			fmt.Sprintf("post is %d characters; the limit is %d", n, textutil.MaxPostLength), nil)
	}

	form := url.Values{}
	form.Set("media_type", "TEXT")
	form.Set("text", text)
	var container idResponse
	if err := c.do(ctx, http.MethodPost, "me/threads", form, &container); err != nil {
		return "", fmt.Errorf("create media container: %w", err)
	}
	if container.ID == "" {
		return "", services.Wrap(services.ErrRemote, "threads", "create post", "media container response missing id", nil)
	}

	publish := url.Values{}
	publish.Set("creation_id", container.ID)
	var published idResponse
	if err := c.do(ctx, http.MethodPost, "me/threads_publish", publish, &published); err != nil {
		return "", fmt.Errorf("publish media container %s: %w", container.ID, err)
	}
	if published.ID == "" {
		return "", services.Wrap(services.ErrRemote, "threads", "create post", "publish response missing id", nil)
	}

	logging.WithContext(ctx, c.logger).Info("post published",
		logging.String("container_id", container.ID),
		logging.String("post_id", published.ID))
	return published.ID, nil
}

// GetProfile returns the profile of the token's owner.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	if c == nil {
		return Profile{}, errors.New("threads: client is nil")
	}
	params := url.Values{}
	params.Set("fields", profileFields)
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "me", params, &profile); err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// GetRecentPosts returns up to limit of the user's most recent posts, newest first.
func (c *Client) GetRecentPosts(ctx context.Context, limit int) ([]Post, error) {
	if c == nil {
		return nil, errors.New("threads: client is nil")
	}
	if limit < 1 || limit > MaxRecentPostsLimit {
		return nil, services.Wrap(services.ErrValidation, "threads", "get recent posts",
			fmt.Sprintf("limit must be between 1 and %d, got %d", MaxRecentPostsLimit, limit), nil)
	}
	params := url.Values{}
	params.Set("fields", postFields)
	params.Set("limit", strconv.Itoa(limit))
	var page postsResponse
	if err := c.do(ctx, http.MethodGet, "me/threads", params, &page); err != nil {
		return nil, fmt.Errorf("get recent posts: %w", err)
	}
	posts := page.Data
	if posts == nil {
		posts = []Post{}
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

type idResponse struct {
	ID string `json:"id"`
}

type postsResponse struct {
	Data []Post `json:"data"`
}

// do sends GET parameters in the query string and POST parameters as a form body.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	endpoint := c.baseURL.JoinPath(path)

	var body io.Reader
	if method == http.MethodGet {
		endpoint.RawQuery = params.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return services.Wrap(services.ErrRemote, "threads", path, "build request", err)
	}
	c.applyHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	logger := logging.WithContext(ctx, c.logger)
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return services.Wrap(services.ErrRemote, "threads", path, "request failed", err)
	}
	defer resp.Body.Close()

	logger.Debug("threads api call",
		logging.String("method", method),
		logging.String("path", endpoint.Path),
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(started)))

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return services.Wrap(services.ErrRemote, "threads", path, "decode response", err)
	}
	return nil
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
}
