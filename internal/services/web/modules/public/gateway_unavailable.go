package public

import (
	"context"

	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
)

type unavailableGateway struct{}

func (unavailableGateway) Login(context.Context, offersapi.Credentials) (offersapi.User, error) {
	return offersapi.User{}, offersapi.ErrNotConfigured
}

func (unavailableGateway) Signup(context.Context, offersapi.Registration) (offersapi.User, error) {
	return offersapi.User{}, offersapi.ErrNotConfigured
}
