package controllers

import (
	"context"
	"net/http"

	"github.com/mannyautos/storefront-backend/api/responses"
	"github.com/mannyautos/storefront-backend/pkg/config"
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
	"github.com/mannyautos/storefront-backend/pkg/logger"
)

const envHeader = "X-MannyAutos-Env"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the cart store dependency. A nil pinger means the
// service runs on the in-memory store and is always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, cartStore Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if cartStore != nil {
			if err := cartStore.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart store unreachable").
						WithDetails(map[string]string{"dependency": "redis"}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
