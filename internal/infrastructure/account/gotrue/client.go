package gotrue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

// Client verifies bearer tokens against a GoTrue-style auth service by
// fetching the token's user record.
type Client struct {
	httpClient *http.Client
	userURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		userURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/") + "/user",
		apiKey:     strings.TrimSpace(apiKey),
		logger:     logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL, nil)
	if err != nil {
		return user.Principal{}, fmt.Errorf("create user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("request auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("read auth response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "auth service non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("auth service responded with status %d", resp.StatusCode)
	}

	var decoded struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal auth response: %w", err)
	}
	if strings.TrimSpace(decoded.ID) == "" {
		return user.Principal{}, fmt.Errorf("invalid auth response: id is empty")
	}

	return user.Principal{AuthUserID: decoded.ID, Email: decoded.Email}, nil
}
