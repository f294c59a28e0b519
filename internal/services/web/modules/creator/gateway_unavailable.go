package creator

import (
	"context"

	"github.com/louisbranch/closealead/internal/offer"
	"github.com/louisbranch/closealead/internal/services/web/integration/offersapi"
)

type unavailableGateway struct{}

func (unavailableGateway) GetOffer(context.Context, string, string) (offer.Offer, error) {
	return offer.Offer{}, offersapi.ErrNotConfigured
}

func (unavailableGateway) CreateOffer(context.Context, string, string, offer.Draft) (offer.Offer, error) {
	return offer.Offer{}, offersapi.ErrNotConfigured
}

func (unavailableGateway) UpdateOffer(context.Context, string, string, offer.Draft) (offer.Offer, error) {
	return offer.Offer{}, offersapi.ErrNotConfigured
}

func (unavailableGateway) ExportOffer(context.Context, string, string) (offersapi.Document, error) {
	return offersapi.Document{}, offersapi.ErrNotConfigured
}
