package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/rshade/greencart/internal/catalog"
	"github.com/rshade/greencart/internal/logging"
	"github.com/rshade/greencart/internal/loyalty"
)

// ProductSource resolves product IDs for Add.
type ProductSource interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

// PointsLedger is the part of the loyalty ledger checkout needs.
type PointsLedger interface {
	Award(ctx context.Context, userID string, points int, action loyalty.Action, productID string) (loyalty.Entry, error)
	Balance(userID string) int
}

// View is a cart snapshot as returned to callers.
type View struct {
	UserID string `json:"userId"`
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
}

// SwapResult reports a completed swap.
type SwapResult struct {
	Alternative Alternative `json:"alternative"`
	Reward      int         `json:"greenPointsReward"`
	Cart        View        `json:"cart"`
}

// Receipt is the outcome of a checkout.
type Receipt struct {
	UserID        string          `json:"userId"`
	Items         []Item          `json:"items"`
	Totals        Totals          `json:"totals"`
	PointsAwarded int             `json:"pointsAwarded"`
	Entries       []loyalty.Entry `json:"entries"`
	Balance       int             `json:"balance"`
}

// Service keeps one cart per user. It is safe for concurrent use.
type Service struct {
	products ProductSource
	ledger   PointsLedger

	mu    sync.Mutex
	carts map[string]*Cart
}

// NewService wires a cart service to a product source and ledger.
func NewService(products ProductSource, ledger PointsLedger) *Service {
	return &Service{
		products: products,
		ledger:   ledger,
		carts:    make(map[string]*Cart),
	}
}

// View returns the user's cart.
func (s *Service) View(userID string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(userID)
}

// Add looks up productID and adds qty units to the user's cart.
func (s *Service) Add(ctx context.Context, userID, productID string, qty int) (View, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return View{}, fmt.Errorf("adding %s to cart: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.cartLocked(userID).Add(p, qty); err != nil {
		return View{}, err
	}
	logging.FromContext(ctx).Debug().
		Str("user_id", userID).
		Str("product_id", productID).
		Int("quantity", qty).
		Msg("added to cart")
	return s.viewLocked(userID), nil
}

// UpdateQuantity sets a line's quantity; zero removes it.
func (s *Service) UpdateQuantity(userID, productID string, qty int) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cartLocked(userID).UpdateQuantity(productID, qty); err != nil {
		return View{}, err
	}
	return s.viewLocked(userID), nil
}

// Remove drops a line from the user's cart.
func (s *Service) Remove(userID, productID string) (View, error) {
	return s.UpdateQuantity(userID, productID, 0)
}

// Alternative returns the eco-friendly alternative for a line.
func (s *Service) Alternative(userID, productID string) (Alternative, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(userID).Alternative(productID)
}

// Swap exchanges a line for its eco-friendly alternative. The reward is
// credited at checkout.
func (s *Service) Swap(ctx context.Context, userID, productID string) (SwapResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(userID)
	alt, err := c.Alternative(productID)
	if err != nil {
		if c.swapped[productID] {
			return SwapResult{}, fmt.Errorf("%w: %s", ErrAlreadySwapped, productID)
		}
		return SwapResult{}, err
	}
	reward, err := c.Swap(productID)
	if err != nil {
		return SwapResult{}, err
	}

	logging.FromContext(ctx).Info().
		Str("user_id", userID).
		Str("product_id", productID).
		Str("alternative_id", alt.ID).
		Int("reward", reward).
		Msg("swapped for eco-friendly alternative")
	return SwapResult{Alternative: alt, Reward: reward, Cart: s.viewLocked(userID)}, nil
}

// SelectDelivery sets the user's delivery option.
func (s *Service) SelectDelivery(userID, optionID string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cartLocked(userID).SelectDelivery(optionID); err != nil {
		return View{}, err
	}
	return s.viewLocked(userID), nil
}

// Checkout credits swap rewards (per unit) and eco-delivery points to the
// ledger, then empties the user's cart. The cart is kept if crediting fails.
func (s *Service) Checkout(ctx context.Context, userID string) (Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartLocked(userID)
	if len(c.items) == 0 {
		return Receipt{}, ErrEmptyCart
	}
	receipt := Receipt{
		UserID: userID,
		Items:  c.Items(),
		Totals: c.Totals(),
	}

	for _, it := range receipt.Items {
		if it.PendingPoints <= 0 {
			continue
		}
		e, err := s.ledger.Award(ctx, userID, it.PendingPoints*it.Quantity, loyalty.ActionSwap, it.SwappedFrom)
		if err != nil {
			return Receipt{}, fmt.Errorf("crediting swap points: %w", err)
		}
		receipt.Entries = append(receipt.Entries, e)
		receipt.PointsAwarded += e.Points
	}
	if c.delivery.GreenPoints > 0 {
		e, err := s.ledger.Award(ctx, userID, c.delivery.GreenPoints, loyalty.ActionEcoDelivery, "")
		if err != nil {
			return Receipt{}, fmt.Errorf("crediting delivery points: %w", err)
		}
		receipt.Entries = append(receipt.Entries, e)
		receipt.PointsAwarded += e.Points
	}
	receipt.Balance = s.ledger.Balance(userID)
	s.carts[userID] = New()

	logging.FromContext(ctx).Info().
		Str("user_id", userID).
		Str("total", receipt.Totals.Total.StringFixed(2)).
		Float64("carbon_kg", receipt.Totals.TotalCarbon).
		Int("points_awarded", receipt.PointsAwarded).
		Msg("checkout complete")
	return receipt, nil
}

func (s *Service) cartLocked(userID string) *Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return c
}

func (s *Service) viewLocked(userID string) View {
	c := s.cartLocked(userID)
	return View{UserID: userID, Items: c.Items(), Totals: c.Totals()}
}
