package app

import (
	"errors"
	"net/http"
)

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if cfg.AuthRequired == nil {
		return nil, errors.New("auth check is required")
	}
	return Compose(ComposeInput{
		AuthRequired:        cfg.AuthRequired,
		PublicModules:       cfg.PublicModules,
		ProtectedModules:    cfg.ProtectedModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
