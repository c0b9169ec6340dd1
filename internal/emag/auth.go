package emag

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/emag-catalog/internal/metrics"
)

// HeaderTokenProvider implements TokenProvider by probing the account
// details endpoint once and reading the credential from a response header.
//
// The outcome of the first probe is kept for the life of the process,
// including failures. Concurrent first callers share a single probe.
type HeaderTokenProvider struct {
	tokenURL string
	header   string
	client   *http.Client

	group singleflight.Group

	mu       sync.Mutex
	resolved bool
	token    string
	err      error
}

// TokenOption configures the HeaderTokenProvider.
type TokenOption func(*HeaderTokenProvider)

// WithTokenURL overrides the default probe endpoint.
func WithTokenURL(u string) TokenOption {
	return func(p *HeaderTokenProvider) {
		p.tokenURL = u
	}
}

// WithTokenHeader overrides the response header carrying the credential.
func WithTokenHeader(h string) TokenOption {
	return func(p *HeaderTokenProvider) {
		p.header = h
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) TokenOption {
	return func(p *HeaderTokenProvider) {
		p.client = c
	}
}

// NewHeaderTokenProvider creates a new token provider. Nothing is fetched
// until the first call to Token.
func NewHeaderTokenProvider(opts ...TokenOption) *HeaderTokenProvider {
	p := &HeaderTokenProvider{
		tokenURL: defaultTokenURL,
		header:   defaultTokenHeader,
		client:   &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns the session credential, probing upstream on first use.
// A missing credential is reported as ErrAuth on every call.
func (p *HeaderTokenProvider) Token(ctx context.Context) (string, error) {
	if p.isResolved() {
		return p.result()
	}

	// The probe outlives any single caller: its result is shared and cached.
	ch := p.group.DoChan("token", func() (any, error) {
		if !p.isResolved() {
			token, err := p.probe(context.WithoutCancel(ctx))
			p.store(token, err)
		}
		return p.result()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: waiting for credential: %w", ErrAuth, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		token, _ := res.Val.(string)
		return token, nil
	}
}

func (p *HeaderTokenProvider) isResolved() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolved
}

func (p *HeaderTokenProvider) result() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return "", p.err
	}
	if p.token == "" {
		return "", fmt.Errorf("%w: upstream issued no %s header", ErrAuth, p.header)
	}
	return p.token, nil
}

func (p *HeaderTokenProvider) store(token string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resolved = true
	p.token = token
	p.err = err
}

func (p *HeaderTokenProvider) probe(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.tokenURL, http.NoBody)
	if err != nil {
		metrics.TokenProbesTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: creating probe request: %w", ErrAuth, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.TokenProbesTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: executing probe request: %w: %w", ErrAuth, ErrTransport, err)
	}
	defer resp.Body.Close()

	token := resp.Header.Get(p.header)
	if token == "" {
		metrics.TokenProbesTotal.WithLabelValues("missing").Inc()
		return "", nil
	}

	metrics.TokenProbesTotal.WithLabelValues("ok").Inc()
	return token, nil
}
