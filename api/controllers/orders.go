package controllers

import (
	"net/http"

	"github.com/mannyautos/storefront-backend/api/responses"
	"github.com/mannyautos/storefront-backend/api/validators"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/internal/orders"
	"github.com/mannyautos/storefront-backend/pkg/logger"
)

type quickOrderRequest struct {
	PartID    int               `json:"part_id" validate:"required,min=1"`
	Selection catalog.Selection `json:"selection"`
}

// OrderQuick builds the single-item order message, bypassing the cart.
func OrderQuick(repo *catalog.Repository, handoff *orders.Handoff, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload quickOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		part, err := repo.ByID(payload.PartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		variant, err := catalog.ResolveVariant(part, payload.Selection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := handoff.QuickMessage(orders.LineItem{
			Name:      part.Name,
			Brand:     variant.Brand,
			Model:     variant.Model,
			Year:      variant.Year,
			Qty:       1,
			UnitPrice: variant.Price,
		})

		responses.WriteSuccess(w, checkoutResponse{
			Message: message,
			Link:    handoff.Link(message),
		})
	}
}

type inquiryRequest struct {
	PartID int `json:"part_id" validate:"required,min=1"`
}

// OrderInquiry builds the availability question for one part.
func OrderInquiry(repo *catalog.Repository, handoff *orders.Handoff, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload inquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		part, err := repo.ByID(payload.PartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message := handoff.InquiryMessage(part.Name, part.ID)
		responses.WriteSuccess(w, checkoutResponse{
			Message: message,
			Link:    handoff.Link(message),
		})
	}
}
