package chainlist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"chaingen/internal/config"
	domainRepo "chaingen/internal/domain/repository"
	"chaingen/internal/pkg/apperrors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.SourceRepository = (*HTTPSource)(nil)

const defaultFetchTimeout = 30 * time.Second

// HTTPSource implements SourceRepository by downloading the chain list over HTTP.
type HTTPSource struct {
	client    *fasthttp.Client
	url       string
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

// HTTPOption customizes an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithClient replaces the default fasthttp client.
func WithClient(client *fasthttp.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = client
	}
}

// NewHTTPSource creates a source that fetches cfg.URL with a bounded timeout.
func NewHTTPSource(cfg config.SourceConfig, logger *zap.Logger, opts ...HTTPOption) *HTTPSource {
	timeout := cfg.GetTimeout()
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	s := &HTTPSource{
		client:    &fasthttp.Client{},
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		timeout:   timeout,
		logger:    logger.Named("ChainlistHTTPSource"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the configured URL.
func (s *HTTPSource) Location() string {
	return s.url
}

type fetchResult struct {
	body []byte
	err  error
}

// Fetch downloads the chain list once. There is no retry.
// Cancelling ctx abandons the in-flight request and returns immediately.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	timeout := s.timeout
	if deadline, hasDeadline := ctx.Deadline(); hasDeadline {
		requestTimeout := time.Until(deadline)
		if requestTimeout <= 0 {
			return nil, fmt.Errorf("%w: context expired before fetching %s", apperrors.ErrTimeout, s.url)
		}
		if requestTimeout < timeout {
			timeout = requestTimeout
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch of %s aborted: %w", s.url, err)
	}

	s.logger.Debug(
		"Fetching chains from Chainlist",
		zap.String("url", s.url),
		zap.Duration("timeout", timeout),
	)

	// Buffered so the request goroutine never blocks after ctx is done.
	done := make(chan fetchResult, 1)
	go func() {
		body, err := s.do(timeout)
		done <- fetchResult{body: body, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		s.logger.Info("Fetched chain list", zap.String("url", s.url), zap.Int("bytes", len(res.body)))
		return res.body, nil
	case <-ctx.Done():
		err := ctx.Err()
		s.logger.Warn("Chainlist request aborted", zap.String("url", s.url), zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: request to %s aborted: %w", apperrors.ErrTimeout, s.url, err)
		}
		return nil, fmt.Errorf("request to %s aborted: %w", s.url, err)
	}
}

// do performs the request. It owns req and resp, so an abandoned request still releases them.
func (s *HTTPSource) do(timeout time.Duration) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")
	if s.userAgent != "" {
		req.Header.SetUserAgent(s.userAgent)
	}

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			s.logger.Error("Chainlist request timed out", zap.Duration("timeout", timeout), zap.Error(err))
			return nil, fmt.Errorf("%w: request to %s timed out after %v: %v",
				apperrors.ErrTimeout, s.url, timeout, err,
			)
		}
		s.logger.Error("Failed to execute request to Chainlist", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to execute request to %s: %v",
			apperrors.ErrExternalServiceFailure, s.url, err,
		)
	}

	if resp.StatusCode() == fasthttp.StatusNotFound {
		s.logger.Warn(
			"Chainlist source reported not found",
			zap.Int("statusCode", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: chainlist source reported not found (%s)", apperrors.ErrNotFound, s.url)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		body := resp.Body()
		s.logger.Error(
			"Chainlist returned non-OK status",
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("body", body[:min(512, len(body))]),
		)
		return nil, fmt.Errorf("%w: %s returned status %d",
			apperrors.ErrExternalServiceFailure, s.url, resp.StatusCode(),
		)
	}

	contentEncoding := resp.Header.Peek(fasthttp.HeaderContentEncoding)
	if bytes.EqualFold(contentEncoding, []byte("gzip")) {
		s.logger.Debug("Received gzipped response from Chainlist")
		decoded, err := resp.BodyGunzip()
		if err != nil {
			s.logger.Error("Failed to gunzip Chainlist response body", zap.Error(err))
			return nil, fmt.Errorf("%w: failed to decompress response from %s: %v",
				apperrors.ErrExternalServiceFailure, s.url, err,
			)
		}
		return decoded, nil
	}
	// resp is released on return, so the body must be copied out.
	return append([]byte(nil), resp.Body()...), nil
}
