package supabase

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

var errStorageTransient = crerr.New("object storage transient failure")

type StoreConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Bucket     string
	ServiceKey string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Store uploads objects to a Supabase-style storage API and derives their
// public URLs. Uploads always overwrite.
type Store struct {
	httpClient *http.Client
	baseURL    string
	bucket     string
	serviceKey string
	logger     *logging.Logger
}

func NewStore(cfg StoreConfig) (*Store, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("storage base url is required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	return &Store{
		httpClient: httpClient,
		baseURL:    baseURL,
		bucket:     bucket,
		serviceKey: strings.TrimSpace(cfg.ServiceKey),
		logger:     logger,
	}, nil
}

// Upload stores data under key in the configured bucket, replacing any
// existing object.
func (s *Store) Upload(ctx context.Context, key, contentType string, data []byte) error {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return fmt.Errorf("object key is required")
	}
	if len(data) == 0 {
		return fmt.Errorf("object body is empty")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := multipart.NewWriter(buf)
	part, err := writer.CreateFormFile("file", key)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, strings.NewReader(buf.String()))
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-upsert", "true")
	req.Header.Set("x-content-type", contentType)
	if s.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.serviceKey)
		req.Header.Set("apikey", s.serviceKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: upload object: %v", errStorageTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		if isRetryableStatus(resp.StatusCode) {
			return fmt.Errorf("%w: upload status=%d body=%s", errStorageTransient, resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return fmt.Errorf("upload status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// PublicURL returns the durable public address of an uploaded object.
func (s *Store) PublicURL(key string) (string, error) {
	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("object key is required")
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key), nil
}

// isTransient reports whether an upload failure is worth retrying.
func isTransient(err error) bool {
	return stderrors.Is(err, errStorageTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

var _ usecase.ObjectStore = (*Store)(nil)
