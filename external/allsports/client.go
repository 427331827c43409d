package allsports

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/resilience"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

const defaultBaseURL = "https://apiv2.allsportsapi.com/basketball"

var errProviderTransient = crerr.New("sports data provider transient failure")
var apiKeyParamRegex = regexp.MustCompile(`APIkey=[^&\s"']+`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client proxies the basketball data API behind the sports endpoints.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type leaguesEnvelope struct {
	Success int `json:"success"`
	Result  []struct {
		LeagueKey   any    `json:"league_key"`
		LeagueName  string `json:"league_name"`
		CountryName string `json:"country_name"`
	} `json:"result"`
}

type teamsEnvelope struct {
	Success int `json:"success"`
	Result  []struct {
		TeamKey  any    `json:"team_key"`
		TeamName string `json:"team_name"`
		TeamLogo string `json:"team_logo"`
	} `json:"result"`
}

func (c *Client) ListLeagues(ctx context.Context) ([]usecase.ExternalLeague, error) {
	var envelope leaguesEnvelope
	if err := c.doJSON(ctx, map[string]string{"met": "Leagues"}, &envelope); err != nil {
		return nil, fmt.Errorf("fetch leagues: %w", err)
	}
	if envelope.Success != 1 {
		return nil, fmt.Errorf("%w: provider reported failure", usecase.ErrDependencyUnavailable)
	}

	leagues := make([]usecase.ExternalLeague, 0, len(envelope.Result))
	for _, item := range envelope.Result {
		leagues = append(leagues, usecase.ExternalLeague{
			LeagueKey:   asKeyString(item.LeagueKey),
			LeagueName:  item.LeagueName,
			CountryName: item.CountryName,
		})
	}
	return leagues, nil
}

func (c *Client) ListTeams(ctx context.Context, leagueKey string) ([]usecase.ExternalTeam, error) {
	var envelope teamsEnvelope
	query := map[string]string{"met": "Teams", "leagueId": leagueKey}
	if err := c.doJSON(ctx, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch teams league=%s: %w", leagueKey, err)
	}
	if envelope.Success != 1 {
		return nil, fmt.Errorf("%w: provider reported failure", usecase.ErrDependencyUnavailable)
	}

	teams := make([]usecase.ExternalTeam, 0, len(envelope.Result))
	for _, item := range envelope.Result {
		teams = append(teams, usecase.ExternalTeam{
			TeamKey:   asKeyString(item.TeamKey),
			TeamName:  item.TeamName,
			LeagueKey: leagueKey,
			LogoURL:   item.TeamLogo,
		})
	}
	return teams, nil
}

func (c *Client) doJSON(ctx context.Context, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sports data circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("APIkey", c.apiKey)
	fullURL := c.baseURL + "/?" + values.Encode()

	out, err, _ := c.flight.Do(values.Encode(), func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errProviderTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errProviderTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errProviderTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d", errProviderTransient, resp.StatusCode)
			} else {
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sports data request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "APIkey=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("APIkey") {
		query.Set("APIkey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func asKeyString(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%.0f", typed), ".")
	default:
		return fmt.Sprintf("%v", typed)
	}
}
