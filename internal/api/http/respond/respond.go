// Package respond holds helpers shared by the JSON handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"service-storefront/internal"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErr maps business errors to 4xx and everything else to a bare 500.
// It returns the status written.
func WriteErr(w http.ResponseWriter, err error) int {
	var biz *internal.BusinessError
	if !errors.As(err, &biz) {
		WriteJSON(w, http.StatusInternalServerError, internal.BizError("internal_error", "internal error"))
		return http.StatusInternalServerError
	}

	status := http.StatusBadRequest
	switch biz.Code {
	case "store_not_found", "product_not_found":
		status = http.StatusNotFound
	}
	WriteJSON(w, status, biz)
	return status
}
