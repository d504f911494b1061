package storefront

import (
	"log/slog"
	"net/http"
	"strconv"

	"service-storefront/internal"
	"service-storefront/internal/api/http/respond"
)

type Handler struct {
	store  *internal.Storefront
	audit  internal.RequestAuditLogger
	logger *slog.Logger
}

func New(store *internal.Storefront, audit internal.RequestAuditLogger, logger *slog.Logger) *Handler {
	return &Handler{store: store, audit: audit, logger: logger}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/store/{slug}", h.getStore)
	mux.HandleFunc("GET /api/store/{slug}/products", h.listProducts)
	mux.HandleFunc("GET /api/store/{slug}/products/{productId}", h.getProduct)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	st, err := h.store.GetStore(r.Context(), slug)
	if err != nil {
		h.fail(w, r, slug, err)
		return
	}

	h.ok(w, r, slug, map[string]any{"store": st})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	q := r.URL.Query()

	page, err := h.store.ListProducts(r.Context(), slug, q.Get("q"), intParam(q.Get("page")), intParam(q.Get("limit")))
	if err != nil {
		h.fail(w, r, slug, err)
		return
	}

	h.ok(w, r, slug, page)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	p, err := h.store.GetProduct(r.Context(), slug, r.PathValue("productId"))
	if err != nil {
		h.fail(w, r, slug, err)
		return
	}

	h.ok(w, r, slug, map[string]any{"product": p})
}

func (h *Handler) ok(w http.ResponseWriter, r *http.Request, slug string, body any) {
	respond.WriteJSON(w, http.StatusOK, body)
	h.log(r, http.StatusOK, slug)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, slug string, err error) {
	st := respond.WriteErr(w, err)
	if st >= http.StatusInternalServerError {
		h.logger.Error("storefront request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	h.log(r, st, slug)
}

func (h *Handler) log(r *http.Request, status int, slug string) {
	if err := h.audit.LogRequest(r.Context(), r.URL.Path, status, slug); err != nil {
		h.logger.Warn("audit log write failed", slog.String("error", err.Error()))
	}
}

// intParam returns 0 for anything that is not an integer; the service
// applies defaults.
func intParam(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
