package httpapi

import (
	"net/http"

	"github.com/rshade/greencart/internal/logging"
	"github.com/rshade/greencart/internal/loyalty"
)

type pointsResponse struct {
	UserID  string          `json:"userId"`
	Balance int             `json:"balance"`
	History []loyalty.Entry `json:"history"`
}

func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	history := s.deps.Ledger.History(user)
	if history == nil {
		history = []loyalty.Entry{}
	}
	writeJSON(w, http.StatusOK, pointsResponse{
		UserID:  user,
		Balance: s.deps.Ledger.Balance(user),
		History: history,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.deps.Dashboard.Summary(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("dashboard summary failed")
		writeError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
