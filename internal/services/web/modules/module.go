// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/louisbranch/closealead/internal/services/web/module"
	"github.com/louisbranch/closealead/internal/services/web/modules/creator"
	"github.com/louisbranch/closealead/internal/services/web/modules/dashboard"
	"github.com/louisbranch/closealead/internal/services/web/modules/public"
	flashnotice "github.com/louisbranch/closealead/internal/services/web/platform/flash"
	webstorage "github.com/louisbranch/closealead/internal/services/web/storage"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Gateway is the backend surface shared by every module. A nil Gateway
// mounts each module in its backend-unavailable mode.
type Gateway interface {
	public.AuthGateway
	dashboard.OfferGateway
	creator.OfferGateway
}

// Sessions is the session manager surface the modules need.
type Sessions interface {
	public.Sessions
	dashboard.SessionUpdater
}

// Dependencies carries the collaborators required to compose the web module
// registry. Each module receives only the narrow interface it declares.
type Dependencies struct {
	Gateway       Gateway
	Sessions      Sessions
	Wizards       webstorage.WizardStore
	Health        module.HealthReporter
	ResolveViewer module.ResolveViewer
	Flash         flashnotice.Writer
	// NewToken overrides submit token generation, mainly for tests.
	NewToken      func() string
}
