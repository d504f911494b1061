package rates

import (
	"context"
	"net/http"
	"time"

	"service-storefront/internal"
	"service-storefront/internal/api/http/respond"

	"github.com/shopspring/decimal"
)

type Snapshotter interface {
	Snapshot() internal.RateSnapshot
}

type Reconciler interface {
	ReconcileCycle(ctx context.Context) internal.ReconcileResult
}

type Handler struct {
	cache  Snapshotter
	engine Reconciler
}

func New(cache Snapshotter, engine Reconciler) *Handler {
	return &Handler{cache: cache, engine: engine}
}

// Register mounts the operator endpoints behind auth.
func (h *Handler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/v1/rates", auth(http.HandlerFunc(h.getDebug)))
	mux.Handle("POST /api/v1/rates/refresh", auth(http.HandlerFunc(h.refresh)))
}

type debugResponse struct {
	UpdatedAt       *time.Time                                `json:"updatedAt"`
	BestRatesToBase map[internal.CurrencyCode]decimal.Decimal `json:"bestRatesToBase"`
	LastComparison  *internal.RateComparison                  `json:"lastComparison"`
}

func (h *Handler) getDebug(w http.ResponseWriter, r *http.Request) {
	snap := h.cache.Snapshot()

	out := debugResponse{
		BestRatesToBase: snap.Rates,
		LastComparison:  snap.LastComparison,
	}
	if !snap.UpdatedAt.IsZero() {
		out.UpdatedAt = &snap.UpdatedAt
	}

	w.Header().Set("Cache-Control", "no-store")
	respond.WriteJSON(w, http.StatusOK, out)
}

// refresh runs a cycle on demand. A degraded cycle is still a 200: the
// result body says what failed.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	res := h.engine.ReconcileCycle(r.Context())
	respond.WriteJSON(w, http.StatusOK, res)
}
