package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/devantler-tech/farmops/pkg/client/netretry"
	"github.com/devantler-tech/farmops/pkg/readiness"
)

// DefaultAcceptedStatus is the accepted status set when none is configured.
// Redirects and auth challenges are not accepted unless listed explicitly.
func DefaultAcceptedStatus() []int {
	return []int{http.StatusOK}
}

// HTTPDoer represents the subset of *http.Client required by the HTTP probe.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns a client that never follows redirects, so a 302 is observed
// as a 302 and can be accepted or rejected explicitly.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// HTTP is ready once a GET of target answers with one of the accepted status codes.
// Gateway errors and transient transport failures are NotReady; other unexpected
// codes and transport failures are Errored. A target that is not an absolute http(s)
// URL is rejected here rather than on every attempt.
func HTTP(client HTTPDoer, target string, accepted []int) (readiness.Probe, error) {
	if len(accepted) == 0 {
		return nil, ErrNoAcceptedStatus
	}

	target = strings.TrimSpace(target)

	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q needs an http:// or https:// scheme and a host", ErrInvalidURL, target)
	}

	accept := slices.Clone(accepted)

	return func(ctx context.Context) readiness.Outcome {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return readiness.ErrorOutcome(fmt.Errorf("build request for %s: %w", target, err))
		}

		resp, err := client.Do(req)
		if err != nil {
			reqErr := fmt.Errorf("GET %s: %w", target, err)
			if netretry.IsTransient(err) {
				return readiness.NotReadyOutcome(reqErr)
			}

			return readiness.ErrorOutcome(reqErr)
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if slices.Contains(accept, resp.StatusCode) {
			return readiness.ReadyOutcome()
		}

		statusErr := fmt.Errorf("%w: GET %s returned %d", ErrUnexpectedStatus, target, resp.StatusCode)
		if netretry.IsTransientStatus(resp.StatusCode) {
			return readiness.NotReadyOutcome(statusErr)
		}

		return readiness.ErrorOutcome(statusErr)
	}, nil
}
