package public

import (
	"context"
	"net/http"

	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
	module "github.com/louisbranch/closealead/internal/services/web/module"
	"github.com/louisbranch/closealead/internal/services/web/platform/websession"
)

type fakeGateway struct {
	user      offersapi.User
	err       error
	lastLogin offersapi.Credentials
	lastReg   offersapi.Registration
	calls     int
}

func (f *fakeGateway) Login(_ context.Context, creds offersapi.Credentials) (offersapi.User, error) {
	f.calls++
	f.lastLogin = creds
	return f.user, f.err
}

func (f *fakeGateway) Signup(_ context.Context, reg offersapi.Registration) (offersapi.User, error) {
	f.calls++
	f.lastReg = reg
	return f.user, f.err
}

type fakeSessions struct {
	established []websession.Identity
	cleared     int
	err         error
}

func (f *fakeSessions) Establish(_ http.ResponseWriter, _ *http.Request, identity websession.Identity) (websession.Session, error) {
	if f.err != nil {
		return websession.Session{}, f.err
	}
	f.established = append(f.established, identity)
	return websession.Session{ID: "sess-1", Name: identity.Name}, nil
}

func (f *fakeSessions) Clear(http.ResponseWriter, *http.Request) error {
	f.cleared++
	return f.err
}

type fakeHealth bool

func (f fakeHealth) Healthy() bool { return bool(f) }

func signedInViewer(*http.Request) module.Viewer {
	return module.Viewer{SignedIn: true, Name: "Ada", PlanKey: "plan.professional.name"}
}
