package dashboard

import (
	"context"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
)

type unavailableGateway struct{}

func (unavailableGateway) ListOffers(context.Context, string) ([]offer.Offer, error) {
	return nil, offersapi.ErrNotConfigured
}

func (unavailableGateway) DeleteOffer(context.Context, string, string) error {
	return offersapi.ErrNotConfigured
}
