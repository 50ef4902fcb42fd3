package http

import (
	"net/http"
)

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
