package roster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of a failed response is quoted in the error
const maxErrorBody = 512

// HTTPSource fetches members from the members data platform
type HTTPSource struct {
	log        logrus.FieldLogger
	httpClient *http.Client
	endpoint   string
}

// NewHTTPSource creates a source for the rendered endpoint in cfg
func NewHTTPSource(log logrus.FieldLogger, cfg *Config) (*HTTPSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	endpoint, err := RenderEndpoint(cfg.URL, map[string]interface{}{
		"House": cfg.House,
	})
	if err != nil {
		return nil, err
	}

	return &HTTPSource{
		log:        log.WithField("component", "roster-http"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   endpoint,
	}, nil
}

// RenderEndpoint renders an endpoint template with Sprig functions
func RenderEndpoint(content string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("endpoint").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse endpoint template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute endpoint template: %w", err)
	}

	endpoint := strings.TrimSpace(buf.String())
	if endpoint == "" {
		return "", ErrEndpointRenderEmpty
	}

	return endpoint, nil
}

// Endpoint returns the rendered URL the source queries
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Members issues a single GET and decodes the response
func (s *HTTPSource) Members(ctx context.Context) ([]Member, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml")

	start := time.Now()

	s.log.WithField("url", s.endpoint).Debug("Fetching members")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.log.WithError(closeErr).Debug("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}

		return nil, fmt.Errorf("%w (status %d): %s", ErrUnexpectedStatus, resp.StatusCode, string(snippet))
	}

	members, err := Decode(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"members":  len(members),
		"bytes":    len(body),
		"duration": time.Since(start),
	}).Info("Fetched members")

	return members, nil
}
