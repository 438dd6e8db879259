package trade

import (
	"github.com/farmlink/backend/internal/domain/shared"
)

// DeliveryInfo is the buyer's delivery choice captured before checkout.
// It lives in a session store until the order is placed and is copied
// onto every order the checkout produces.
type DeliveryInfo struct {
	Method       DeliveryMethod `json:"method"`
	Address      string         `json:"address"`
	Coordinates  string         `json:"coordinates"` // optional "lat,lng" pair
	ContactPhone string         `json:"contact_phone"`
	Notes        string         `json:"notes"`
}

// Validate checks the delivery info is complete for its method
func (d DeliveryInfo) Validate() error {
	if !d.Method.IsValid() {
		return shared.NewDomainError("INVALID_DELIVERY_METHOD", "Delivery method must be DELIVERY or PICKUP")
	}
	if d.ContactPhone == "" {
		return shared.NewDomainError("INVALID_DELIVERY_INFO", "Contact phone is required")
	}
	if d.Method == DeliveryMethodDelivery && d.Address == "" {
		return shared.NewDomainError("INVALID_DELIVERY_INFO", "Address is required for delivery orders")
	}
	return nil
}
