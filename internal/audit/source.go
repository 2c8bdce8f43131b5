package audit

import "context"

// Source supplies raw per-category telemetry from the instrumented app.
// Each method corresponds to one introspection request; a returned error
// means that category is unavailable for this capture, never an empty
// success. The concrete implementation lives in internal/telemetry.
type Source interface {
	// InteractiveElements returns candidate tappable controls with their
	// accessible names.
	InteractiveElements(ctx context.Context) ([]InteractiveElement, error)

	// TouchTargets returns element+frame pairs for touch-target sizing.
	TouchTargets(ctx context.Context) ([]InteractiveElement, error)

	// ContrastSamples returns color pairs with precomputed contrast ratios.
	ContrastSamples(ctx context.Context) ([]ContrastSample, error)

	// LayoutIssues returns the app's current Auto Layout problem set.
	LayoutIssues(ctx context.Context) ([]LayoutFinding, error)
}
