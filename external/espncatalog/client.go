package espncatalog

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/cache"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/resilience"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

const (
	defaultBaseURL       = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	teamsCacheKey        = "catalog:teams"
	defaultCacheTTL      = 10 * time.Minute
	maxLogoDownloadBytes = 8 << 20
)

var errCatalogTransient = crerr.New("team catalog transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public team catalog. Teams responses are cached in
// process; logo binaries are fetched uncached.
type Client struct {
	httpClient     *http.Client
	downloadClient *fasthttp.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	teamsCache     *cache.Store
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

	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		downloadClient: &fasthttp.Client{ReadTimeout: httpClient.Timeout, WriteTimeout: httpClient.Timeout},
		baseURL:        baseURL,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		teamsCache:     cache.NewStore(cacheTTL),
	}
}

type teamsEnvelope struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team struct {
					DisplayName      string `json:"displayName"`
					Name             string `json:"name"`
					ShortDisplayName string `json:"shortDisplayName"`
					Logos            []struct {
						Href string `json:"href"`
					} `json:"logos"`
				} `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

// ListTeams returns the catalog's teams, served from the in-process cache
// while the TTL holds.
func (c *Client) ListTeams(ctx context.Context) ([]usecase.CatalogTeam, error) {
	out, err := c.teamsCache.GetOrLoad(ctx, teamsCacheKey, func(ctx context.Context) (any, error) {
		var envelope teamsEnvelope
		if err := c.doJSON(ctx, "/teams", &envelope); err != nil {
			return nil, fmt.Errorf("fetch catalog teams: %w", err)
		}

		teams := make([]usecase.CatalogTeam, 0, 32)
		for _, sport := range envelope.Sports {
			for _, league := range sport.Leagues {
				for _, wrapped := range league.Teams {
					item := usecase.CatalogTeam{
						DisplayName:      wrapped.Team.DisplayName,
						Name:             wrapped.Team.Name,
						ShortDisplayName: wrapped.Team.ShortDisplayName,
					}
					for _, logo := range wrapped.Team.Logos {
						if href := strings.TrimSpace(logo.Href); href != "" {
							item.LogoURLs = append(item.LogoURLs, href)
						}
					}
					teams = append(teams, item)
				}
			}
		}
		return teams, nil
	})
	if err != nil {
		return nil, err
	}

	teams, ok := out.([]usecase.CatalogTeam)
	if !ok {
		return nil, fmt.Errorf("unexpected cached payload type %T", out)
	}
	return teams, nil
}

// Download fetches a logo binary from its catalog URL.
func (c *Client) Download(_ context.Context, logoURL string) (usecase.LogoImage, error) {
	logoURL = strings.TrimSpace(logoURL)
	if !strings.HasPrefix(logoURL, "http://") && !strings.HasPrefix(logoURL, "https://") {
		return usecase.LogoImage{}, fmt.Errorf("logo url must be absolute, got %q", logoURL)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(logoURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.downloadClient.DoRedirects(req, resp, 3); err != nil {
		return usecase.LogoImage{}, fmt.Errorf("%w: download logo: %v", usecase.ErrDependencyUnavailable, err)
	}
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return usecase.LogoImage{}, fmt.Errorf("%w: logo download status=%d", usecase.ErrDependencyUnavailable, code)
	}

	body := resp.Body()
	if len(body) == 0 {
		return usecase.LogoImage{}, fmt.Errorf("%w: logo download returned an empty body", usecase.ErrDependencyUnavailable)
	}
	if len(body) > maxLogoDownloadBytes {
		return usecase.LogoImage{}, fmt.Errorf("logo exceeds %d bytes", maxLogoDownloadBytes)
	}

	contentType := string(resp.Header.ContentType())
	if contentType == "" {
		contentType = "image/png"
	}

	image := usecase.LogoImage{ContentType: contentType, Data: append([]byte(nil), body...)}
	return image, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "catalog circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: team catalog is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(path, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCatalogCircuitFailure(reqErr) {
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
		return fmt.Errorf("decode catalog payload: %w", err)
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
			lastErr = fmt.Errorf("%w: send request: %v", errCatalogTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errCatalogTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: catalog status=%d body=%s", errCatalogTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("catalog status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
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
		lastErr = fmt.Errorf("catalog request failed")
	}
	c.logger.WarnContext(ctx, "catalog request failed", "url", redactURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isCatalogCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errCatalogTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""
	return parsed.String()
}
