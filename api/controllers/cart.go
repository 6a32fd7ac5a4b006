package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mannyautos/storefront-backend/api/middleware"
	"github.com/mannyautos/storefront-backend/api/responses"
	"github.com/mannyautos/storefront-backend/api/validators"
	cartsvc "github.com/mannyautos/storefront-backend/internal/cart"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/internal/orders"
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
	"github.com/mannyautos/storefront-backend/pkg/logger"
)

type cartResponse struct {
	Cart      cartsvc.Summary `json:"cart"`
	Cancelled bool            `json:"cancelled,omitempty"`
}

func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: summary})
	}
}

type addItemRequest struct {
	PartID    int               `json:"part_id" validate:"required,min=1"`
	Qty       int               `json:"qty" validate:"omitempty,min=1"`
	Selection catalog.Selection `json:"selection"`
	Cancelled bool              `json:"cancelled"`
}

// CartAdd adds one part to the session cart. A cancelled selection prompt is
// reported as a normal response echoing the unchanged cart.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		summary, err := svc.Add(r.Context(), sessionID, cartsvc.AddInput{
			PartID:    payload.PartID,
			Qty:       payload.Qty,
			Selection: payload.Selection,
			Cancelled: payload.Cancelled,
		})
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeSelectionCancelled) {
				current, getErr := svc.Get(r.Context(), sessionID)
				if getErr != nil {
					responses.WriteError(r.Context(), logg, w, getErr)
					return
				}
				responses.WriteSuccess(w, cartResponse{Cart: current, Cancelled: true})
				return
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, cartResponse{Cart: summary})
	}
}

func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := validators.PathInt(chi.URLParam(r, "index"), "index")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Remove(r.Context(), middleware.SessionIDFromContext(r.Context()), index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: summary})
	}
}

type changeQtyRequest struct {
	Delta int `json:"delta" validate:"required"`
}

func CartChangeQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := validators.PathInt(chi.URLParam(r, "index"), "index")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload changeQtyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.ChangeQuantity(r.Context(), middleware.SessionIDFromContext(r.Context()), index, payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: summary})
	}
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartResponse{Cart: summary})
	}
}

type checkoutResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// CartCheckout renders the order hand-off message for the current cart and
// the deep link that opens it. The cart itself is left untouched; clearing
// it is the storefront's call after the hand-off succeeds.
func CartCheckout(svc cartsvc.Service, handoff *orders.Handoff, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]orders.LineItem, 0, len(summary.Lines))
		for _, line := range summary.Lines {
			items = append(items, orders.LineItem{
				Name:      line.Name,
				Brand:     line.Variant.Brand,
				Model:     line.Variant.Model,
				Year:      line.Variant.Year,
				Qty:       line.Qty,
				UnitPrice: line.Variant.Price,
			})
		}

		message, err := handoff.OrderMessage(items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checkoutResponse{
			Message: message,
			Link:    handoff.Link(message),
		})
	}
}
