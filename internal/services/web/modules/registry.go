package modules

import (
	"github.com/louisbranch/closealead/internal/services/web/modules/creator"
	"github.com/louisbranch/closealead/internal/services/web/modules/dashboard"
	"github.com/louisbranch/closealead/internal/services/web/modules/public"
	"github.com/louisbranch/closealead/internal/services/web/platform/modulehandler"
)

// DefaultPublicModules returns the modules served without a session.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		public.New(public.Config{
			Gateway:       deps.Gateway,
			Sessions:      deps.Sessions,
			ResolveViewer: deps.ResolveViewer,
			Flash:         deps.Flash,
			Health:        deps.Health,
		}),
	}
}

// DefaultProtectedModules returns the modules that require a session.
func DefaultProtectedModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.ResolveViewer, deps.Flash)
	cfg := creator.Config{
		Gateway:  deps.Gateway,
		Store:    deps.Wizards,
		Sessions: deps.Sessions,
		NewToken: deps.NewToken,
		Base:     base,
	}
	return []Module{
		dashboard.New(deps.Gateway, deps.Sessions, base),
		creator.NewCreate(cfg),
		creator.NewEdit(cfg),
	}
}
