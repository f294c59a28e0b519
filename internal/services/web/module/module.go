// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Viewer contains the signed-in state shown in page chrome.
type Viewer struct {
	SignedIn bool
	Name     string
	// PlanKey is the localization key of the viewer's plan name.
	PlanKey string
	// CanCreate reports whether the plan has room for another offer.
	CanCreate bool
}

// ResolveViewer resolves chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules backed by the offers API implement it so
// the health endpoint can report a missing backend.
type HealthReporter interface {
	Healthy() bool
}
