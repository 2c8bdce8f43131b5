// Package telemetry implements the client side of the in-app introspection
// bridge: an HTTP server the instrumented simulator app hosts, answering
// per-category UI-state queries with a {success, data, error} envelope.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"simaudit/internal/audit"
	"simaudit/internal/model"
)

// DefaultBaseURL is where the introspection framework listens when the app
// is launched with default instrumentation settings.
const DefaultBaseURL = "http://localhost:9222"

const requestTimeout = 10 * time.Second

// Bridge is an HTTP client for the introspection server. It satisfies
// audit.Source. Every failure mode — transport error, non-200 status,
// malformed body, success:false — comes back as an error, never as an empty
// success, so callers can tell "no findings" from "could not ask".
type Bridge struct {
	baseURL string
	client  *http.Client
}

// NewBridge creates a bridge client for the given base URL, falling back to
// DefaultBaseURL when empty.
func NewBridge(baseURL string) *Bridge {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Bridge{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// envelope is the bridge's wire format for every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (b *Bridge) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("bridge request %s: %w", path, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("bridge request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge request %s: unexpected status %s", path, resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("bridge response %s: %w", path, err)
	}
	if !env.Success {
		if env.Error == "" {
			env.Error = "introspection request failed"
		}
		return fmt.Errorf("bridge response %s: %s", path, env.Error)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("bridge response %s: %w", path, err)
		}
	}
	return nil
}

// InteractiveElements fetches candidate tappable controls.
func (b *Bridge) InteractiveElements(ctx context.Context) ([]audit.InteractiveElement, error) {
	var elements []audit.InteractiveElement
	if err := b.get(ctx, "/accessibility/interactive-elements", &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// TouchTargets fetches element+frame pairs for touch-target sizing.
func (b *Bridge) TouchTargets(ctx context.Context) ([]audit.InteractiveElement, error) {
	var elements []audit.InteractiveElement
	if err := b.get(ctx, "/accessibility/touch-targets", &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// ContrastSamples fetches color pairs with their precomputed ratios.
func (b *Bridge) ContrastSamples(ctx context.Context) ([]audit.ContrastSample, error) {
	var samples []audit.ContrastSample
	if err := b.get(ctx, "/accessibility/contrast", &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// LayoutIssues fetches the app's current Auto Layout problem set.
func (b *Bridge) LayoutIssues(ctx context.Context) ([]audit.LayoutFinding, error) {
	var findings []audit.LayoutFinding
	if err := b.get(ctx, "/accessibility/layout", &findings); err != nil {
		return nil, err
	}
	return findings, nil
}

// Snapshot fetches the raw view-hierarchy tree for passthrough display.
func (b *Bridge) Snapshot(ctx context.Context) ([]model.ViewNode, error) {
	var nodes []model.ViewNode
	if err := b.get(ctx, "/accessibility/snapshot", &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}
