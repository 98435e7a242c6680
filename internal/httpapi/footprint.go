package httpapi

import (
	"errors"
	"net/http"

	"github.com/rshade/greencart/internal/carbon"
	"github.com/rshade/greencart/internal/logging"
)

type footprintResponse struct {
	Footprint   carbon.Footprint `json:"footprint"`
	Rating      carbon.Rating    `json:"rating"`
	Class       carbon.Class     `json:"footprintClass"`
	Suggestions []string         `json:"suggestions"`
}

type compareRequest struct {
	Products []carbon.Product `json:"products"`
}

func (s *Server) handleFootprint(w http.ResponseWriter, r *http.Request) {
	var p carbon.Product
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fp := carbon.CalculateFootprint(p)
	suggestions := carbon.SuggestAlternatives(p)
	if suggestions == nil {
		suggestions = []string{}
	}
	logging.FromContext(r.Context()).Debug().
		Str("category", p.Category).
		Float64("total_kg", fp.Total).
		Msg("footprint estimated")

	writeJSON(w, http.StatusOK, footprintResponse{
		Footprint:   fp,
		Rating:      carbon.RatingFor(fp.Total),
		Class:       carbon.FootprintClass(fp.Total),
		Suggestions: suggestions,
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmp, err := carbon.Compare(req.Products)
	switch {
	case errors.Is(err, carbon.ErrNoProducts):
		writeError(w, http.StatusBadRequest, "At least one product is required")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to compare products")
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}
