package carrier

import (
	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	EventCarrierRegistered = "carrier.registered"
	EventCarrierRated      = "carrier.rated"
)

type RegisteredEvent struct {
	kernel.Event
	CompanyName string `json:"companyName"`
	Email       string `json:"contactEmail"`
}

type RatedEvent struct {
	kernel.Event
	LoadID      kernel.UUID     `json:"loadId"`
	ShipperID   kernel.UUID     `json:"shipperId"`
	Score       int             `json:"rating"`
	Rating      decimal.Decimal `json:"carrierRating"`
	RatingCount int             `json:"ratingCount"`
}
