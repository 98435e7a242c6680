package httpapi

import (
	"errors"
	"net/http"

	"github.com/rshade/greencart/internal/cart"
	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/logging"
	"github.com/rshade/greencart/internal/loyalty"
)

// HeaderUserID identifies the shopper. There is no authentication.
const HeaderUserID = "X-User-ID"

// GuestUserID is used when no user header is sent.
const GuestUserID = "guest"

func userID(r *http.Request) string {
	if id := r.Header.Get(HeaderUserID); id != "" {
		return id
	}
	return GuestUserID
}

type cartItemJSON struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	ImageURL        string  `json:"imageUrl"`
	CarbonFootprint float64 `json:"carbonFootprint"`
	Category        string  `json:"category"`
	Brand           string  `json:"brand"`
	SwappedFrom     string  `json:"swappedFrom,omitempty"`
	PendingPoints   int     `json:"pendingPoints,omitempty"`
	Swappable       bool    `json:"swappable"`
}

type totalsJSON struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryPrice  float64 `json:"deliveryPrice"`
	Total          float64 `json:"total"`
	ItemsCarbon    float64 `json:"itemsCarbon"`
	DeliveryCarbon float64 `json:"deliveryCarbon"`
	TotalCarbon    float64 `json:"totalCarbon"`
	ItemCount      int     `json:"itemCount"`
	PendingPoints  int     `json:"pendingPoints"`
	Delivery       string  `json:"delivery"`
}

type cartJSON struct {
	UserID string         `json:"userId"`
	Items  []cartItemJSON `json:"items"`
	Totals totalsJSON     `json:"totals"`
}

type alternativeJSON struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	ImageURL          string  `json:"imageUrl"`
	CarbonFootprint   float64 `json:"carbonFootprint"`
	CarbonSaving      float64 `json:"carbonSaving"`
	GreenPointsReward int     `json:"greenPointsReward"`
}

type deliveryOptionJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Time         string  `json:"time"`
	Price        float64 `json:"price"`
	CarbonImpact float64 `json:"carbonImpact"`
	Vehicle      string  `json:"vehicle"`
	GreenPoints  int     `json:"greenPoints,omitempty"`
	Discount     bool    `json:"discount,omitempty"`
}

type swapJSON struct {
	Alternative alternativeJSON `json:"alternative"`
	Reward      int             `json:"greenPointsReward"`
	Cart        cartJSON        `json:"cart"`
}

type receiptJSON struct {
	UserID        string          `json:"userId"`
	Items         []cartItemJSON  `json:"items"`
	Totals        totalsJSON      `json:"totals"`
	PointsAwarded int             `json:"pointsAwarded"`
	Entries       []loyalty.Entry `json:"entries"`
	Balance       int             `json:"balance"`
}

func toItemsJSON(items []cart.Item) []cartItemJSON {
	out := make([]cartItemJSON, len(items))
	for i, it := range items {
		out[i] = cartItemJSON{
			ID:              it.ProductID,
			Name:            it.Name,
			Price:           it.Price.InexactFloat64(),
			Quantity:        it.Quantity,
			ImageURL:        it.ImageURL,
			CarbonFootprint: it.CarbonFootprint,
			Category:        it.Category,
			Brand:           it.Brand,
			SwappedFrom:     it.SwappedFrom,
			PendingPoints:   it.PendingPoints,
			Swappable:       cart.Swappable(it),
		}
	}
	return out
}

func toTotalsJSON(t cart.Totals) totalsJSON {
	return totalsJSON{
		Subtotal:       t.Subtotal.InexactFloat64(),
		DeliveryPrice:  t.DeliveryPrice.InexactFloat64(),
		Total:          t.Total.InexactFloat64(),
		ItemsCarbon:    t.ItemsCarbon,
		DeliveryCarbon: t.DeliveryCarbon,
		TotalCarbon:    t.TotalCarbon,
		ItemCount:      t.ItemCount,
		PendingPoints:  t.PendingPoints,
		Delivery:       t.Delivery,
	}
}

func toCartJSON(v cart.View) cartJSON {
	return cartJSON{UserID: v.UserID, Items: toItemsJSON(v.Items), Totals: toTotalsJSON(v.Totals)}
}

func toAlternativeJSON(a cart.Alternative) alternativeJSON {
	return alternativeJSON{
		ID:                a.ID,
		Name:              a.Name,
		Price:             a.Price.InexactFloat64(),
		ImageURL:          a.ImageURL,
		CarbonFootprint:   a.CarbonFootprint,
		CarbonSaving:      a.CarbonSaving,
		GreenPointsReward: a.GreenPointsReward,
	}
}

// cartStatus maps cart and catalog errors to HTTP status codes.
func cartStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, cart.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrAlreadySwapped):
		return http.StatusConflict
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrNotSwappable),
		errors.Is(err, cart.ErrUnknownDelivery),
		errors.Is(err, cart.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	status := cartStatus(err)
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error().Err(err).Msg("cart operation failed")
		writeError(w, status, "Cart operation failed")
		return
	}
	writeError(w, status, err.Error())
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCartJSON(s.deps.Carts.View(userID(r))))
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := s.deps.Carts.Add(r.Context(), userID(r), req.ProductID, req.Quantity)
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartJSON(view))
}

type updateItemRequest struct {
	Quantity *int `json:"quantity"`
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "quantity is required")
		return
	}

	view, err := s.deps.Carts.UpdateQuantity(userID(r), r.PathValue("id"), *req.Quantity)
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartJSON(view))
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	view, err := s.deps.Carts.Remove(userID(r), r.PathValue("id"))
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartJSON(view))
}

func (s *Server) handleAlternative(w http.ResponseWriter, r *http.Request) {
	alt, err := s.deps.Carts.Alternative(userID(r), r.PathValue("id"))
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAlternativeJSON(alt))
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	res, err := s.deps.Carts.Swap(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, swapJSON{
		Alternative: toAlternativeJSON(res.Alternative),
		Reward:      res.Reward,
		Cart:        toCartJSON(res.Cart),
	})
}

func (s *Server) handleDeliveryOptions(w http.ResponseWriter, _ *http.Request) {
	opts := cart.DeliveryOptions()
	out := make([]deliveryOptionJSON, len(opts))
	for i, o := range opts {
		out[i] = deliveryOptionJSON{
			ID:           o.ID,
			Name:         o.Name,
			Time:         o.Time,
			Price:        o.Price.InexactFloat64(),
			CarbonImpact: o.CarbonImpact,
			Vehicle:      o.Vehicle,
			GreenPoints:  o.GreenPoints,
			Discount:     o.Discount,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"options": out})
}

type selectDeliveryRequest struct {
	OptionID string `json:"optionId"`
}

func (s *Server) handleSelectDelivery(w http.ResponseWriter, r *http.Request) {
	var req selectDeliveryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := s.deps.Carts.SelectDelivery(userID(r), req.OptionID)
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartJSON(view))
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.deps.Carts.Checkout(r.Context(), userID(r))
	if err != nil {
		writeCartError(w, r, err)
		return
	}
	entries := receipt.Entries
	if entries == nil {
		entries = []loyalty.Entry{}
	}
	writeJSON(w, http.StatusOK, receiptJSON{
		UserID:        receipt.UserID,
		Items:         toItemsJSON(receipt.Items),
		Totals:        toTotalsJSON(receipt.Totals),
		PointsAwarded: receipt.PointsAwarded,
		Entries:       entries,
		Balance:       receipt.Balance,
	})
}
