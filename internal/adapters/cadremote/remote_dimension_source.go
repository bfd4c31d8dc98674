package cadremote

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteDimensionSource implements DimensionSource by sending the model file
// to an external CAD parsing service.
//
// The service receives the raw file as the request body and answers with
// {"dimensions": {...}} using the snake_case dimension fields.
// The source is safe for concurrent use.
type RemoteDimensionSource struct {
	session        *http.Client
	apiKey         string
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
}

type Option func(*RemoteDimensionSource)

func WithHTTPClient(c *http.Client) Option {
	return func(s *RemoteDimensionSource) {
		s.session = c
	}
}

// WithRetry sets the attempt budget and the first backoff interval, which doubles per retry.
func WithRetry(maxAttempts int, initialBackoff time.Duration) Option {
	return func(s *RemoteDimensionSource) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if initialBackoff >= 0 {
			s.initialBackoff = initialBackoff
		}
	}
}

func NewRemoteDimensionSource(baseURL, apiKey string, opts ...Option) (*RemoteDimensionSource, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("cad parser url %q is not an absolute url", baseURL)
	}

	s := &RemoteDimensionSource{
		session:        &http.Client{Timeout: 30 * time.Second},
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(u.String(), "/"),
		maxAttempts:    4,
		initialBackoff: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

type parseResponse struct {
	Dimensions *domain.BuildingDimensions `json:"dimensions"`
}

// Extract uploads the file content and returns the dimensions reported by the service.
func (s *RemoteDimensionSource) Extract(ctx context.Context, file domain.UploadedFile) (_ domain.BuildingDimensions, err error) {
	defer obs.Time(ctx, "cadremote.Extract")(&err)

	if strings.TrimSpace(file.Name) == "" {
		return domain.BuildingDimensions{}, errors.New("remote extract: file name must not be empty")
	}
	if file.Content == nil {
		return domain.BuildingDimensions{}, fmt.Errorf("remote extract: %q has no content", file.Name)
	}

	endpoint := s.baseURL + "/v1/parse?" + url.Values{"file_name": {file.Name}}.Encode()

	makeReq := func() (*http.Request, error) {
		// Rewind so every attempt sends the whole file.
		if _, err := file.Content.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind content: %w", err)
		}
		req, err := s.newRequest(ctx, http.MethodPost, endpoint, io.NopCloser(file.Content))
		if err != nil {
			return nil, err
		}
		if file.Size > 0 {
			req.ContentLength = file.Size
		}
		return req, nil
	}

	resp, err := s.doWithRetry(ctx, makeReq)
	if err != nil {
		return domain.BuildingDimensions{}, fmt.Errorf("remote extract %q: %w", file.Name, err)
	}
	defer resp.Body.Close()

	var body parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.BuildingDimensions{}, fmt.Errorf("remote extract %q: decode response: %w", file.Name, err)
	}
	if body.Dimensions == nil {
		return domain.BuildingDimensions{}, fmt.Errorf("remote extract %q: response has no dimensions", file.Name)
	}
	if err := body.Dimensions.Validate(); err != nil {
		return domain.BuildingDimensions{}, fmt.Errorf("remote extract %q: parser returned %w", file.Name, err)
	}

	return *body.Dimensions, nil
}
