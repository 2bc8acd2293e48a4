package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/astralfront/supremacy/internal/api/apierr"
	"github.com/astralfront/supremacy/internal/api/request"
	"github.com/astralfront/supremacy/internal/api/response"
	"github.com/astralfront/supremacy/internal/model"
)

// APIError is an error response returned by the server
type APIError struct {
	Status  int
	Code    string
	Message string
}

// Error implements error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// IsAuthError reports whether the error is an expired or invalid token
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// TokenStore persists an issued token pair between calls
type TokenStore interface {
	Load() (*response.TokenPair, error)
	Save(pair response.TokenPair) error
}

// MemoryTokenStore keeps the token pair in memory
type MemoryTokenStore struct {
	mu   sync.Mutex
	pair *response.TokenPair
}

// NewMemoryTokenStore creates an empty in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load returns the stored pair, or nil if none has been saved
func (s *MemoryTokenStore) Load() (*response.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, nil
}

// Save replaces the stored pair
func (s *MemoryTokenStore) Save(pair response.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = &pair
	return nil
}

// Client is a typed client for the game API. It attaches the client id
// and bearer token to every call and transparently refreshes an
// expired access token, retrying the failed call once.
type Client struct {
	baseURL  string
	clientID string
	tokens   TokenStore
	http     *http.Client

	// Collapses concurrent refresh attempts into a single upstream call
	refreshGroup singleflight.Group
}

// Config holds client configuration
type Config struct {
	// BaseURL is the server address, e.g. http://localhost:8080
	BaseURL string
	// ClientID identifies this device; token grants are scoped to it
	ClientID string
	// Tokens persists the token pair (optional; defaults to in-memory)
	Tokens TokenStore
	// Timeout for individual HTTP calls (optional)
	Timeout time.Duration
}

// New creates a new API client
func New(cfg Config) *Client {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		tokens:   tokens,
		http:     &http.Client{Timeout: timeout},
	}
}

// Signup creates an account and stores the issued tokens
func (c *Client) Signup(ctx context.Context, username, password string) (*response.TokenPair, error) {
	var pair response.TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", request.SignupRequest{
		Username: username,
		Password: password,
	}, false, &pair)
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Save(pair); err != nil {
		return nil, fmt.Errorf("saving tokens: %w", err)
	}
	return &pair, nil
}

// Login authenticates and stores the issued tokens
func (c *Client) Login(ctx context.Context, username, password string) (*response.TokenPair, error) {
	var pair response.TokenPair
	err := c.do(ctx, http.MethodPost, "/api/auth/login", request.LoginRequest{
		Username: username,
		Password: password,
	}, false, &pair)
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Save(pair); err != nil {
		return nil, fmt.Errorf("saving tokens: %w", err)
	}
	return &pair, nil
}

// Refresh rotates the stored token pair
func (c *Client) Refresh(ctx context.Context) (*response.TokenPair, error) {
	pair, err := c.tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tokens: %w", err)
	}
	if pair == nil {
		return nil, &APIError{Status: http.StatusUnauthorized, Code: apierr.CodeUnauthorized, Message: "not logged in"}
	}
	return c.refresh(ctx, pair.AccessToken)
}

// CreateGame starts a new game and returns its id
func (c *Client) CreateGame(ctx context.Context, req request.CreateGameRequest) (string, error) {
	var resp response.CreateGameResponse
	if err := c.do(ctx, http.MethodPost, "/api/games", req, true, &resp); err != nil {
		return "", err
	}
	return resp.GameID, nil
}

// Game fetches the caller's fogged view of a game
func (c *Client) Game(ctx context.Context, gameID string) (*model.GameView, error) {
	var view model.GameView
	if err := c.do(ctx, http.MethodGet, "/api/games/"+gameID, nil, true, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Games lists the caller's in-progress games
func (c *Client) Games(ctx context.Context) (*response.GameList, error) {
	var list response.GameList
	if err := c.do(ctx, http.MethodGet, "/api/games", nil, true, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Health checks the server's health endpoint
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, false, nil)
}

// do performs one API call, decoding a success body into out. Authed
// calls that come back 401 trigger a refresh and a single retry.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var access string
	if authed {
		pair, err := c.tokens.Load()
		if err != nil {
			return fmt.Errorf("loading tokens: %w", err)
		}
		if pair == nil {
			return &APIError{Status: http.StatusUnauthorized, Code: apierr.CodeUnauthorized, Message: "not logged in"}
		}
		access = pair.AccessToken
	}

	err := c.doOnce(ctx, method, path, body, access, out)
	if err == nil || !authed || !IsAuthError(err) {
		return err
	}

	rotated, refreshErr := c.refresh(ctx, access)
	if refreshErr != nil {
		// The original failure is the more useful error if the refresh
		// token is also dead
		if IsAuthError(refreshErr) {
			return err
		}
		return refreshErr
	}

	return c.doOnce(ctx, method, path, body, rotated.AccessToken, out)
}

func (c *Client) doOnce(ctx context.Context, method, path string, body any, access string, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-ID", c.clientID)

	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// refresh rotates the token pair, collapsing concurrent callers into
// one upstream refresh. staleAccess is the access token that just
// failed; if another caller already rotated past it, the stored pair is
// returned without a second upstream call.
func (c *Client) refresh(ctx context.Context, staleAccess string) (*response.TokenPair, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		pair, err := c.tokens.Load()
		if err != nil {
			return nil, fmt.Errorf("loading tokens: %w", err)
		}
		if pair == nil {
			return nil, &APIError{Status: http.StatusUnauthorized, Code: apierr.CodeUnauthorized, Message: "not logged in"}
		}
		if pair.AccessToken != staleAccess {
			return pair, nil
		}

		var rotated response.TokenPair
		err = c.doOnce(ctx, http.MethodPost, "/api/auth/refresh", request.RefreshRequest{
			RefreshToken: pair.RefreshToken,
		}, "", &rotated)
		if err != nil {
			return nil, err
		}

		if err := c.tokens.Save(rotated); err != nil {
			return nil, fmt.Errorf("saving tokens: %w", err)
		}
		return &rotated, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*response.TokenPair), nil
}

func decodeError(resp *http.Response) error {
	var body apierr.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error.Code == "" {
		return &APIError{Status: resp.StatusCode, Code: apierr.CodeInternalError, Message: resp.Status}
	}
	return &APIError{
		Status:  resp.StatusCode,
		Code:    body.Error.Code,
		Message: body.Error.Message,
	}
}
