package server

import (
	"net/http"

	"fintrack/internal/model"
)

// handleDashboard returns the aggregate view for the authenticated owner.
// Granularity defaults to month; the transaction filter parameters of the
// listing endpoint apply here as well.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	granularity, err := model.ParseGranularity(r.URL.Query().Get("granularity"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ownerID, _ := ownerFromContext(r.Context())
	summary, err := s.reporter.Summary(r.Context(), ownerID, granularity, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
