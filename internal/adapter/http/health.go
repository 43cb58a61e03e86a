package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleHealth reports that the process is serving. It does not call the
// Graph API.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
