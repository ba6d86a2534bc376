package session

import (
	"sync"
	"time"

	"mtnshop/internal/models"
)

type CheckoutStep string

const (
	StepNone         CheckoutStep = ""
	StepCheckout     CheckoutStep = "checkout"
	StepConfirmation CheckoutStep = "confirmation"
)

// Session is one shopper's volatile state: cart, chat transcript and the
// current position in the checkout flow. It dies with the process.
type Session struct {
	ID string

	mu              sync.Mutex
	cart            []models.CartItem
	messages        []models.ChatMessage
	deliveryAddress string
	paymentMethod   string
	step            CheckoutStep
	currentOrderID  int
	lastSeen        time.Time
}

func newSession(id string) *Session {
	return &Session{ID: id, lastSeen: time.Now()}
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

func (s *Session) bump() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
}

// AddToCart appends a snapshot of the product. Each call is an independent
// entry; the same product id may appear any number of times.
func (s *Session) AddToCart(p models.Product) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	item := models.NewCartItem(p)
	s.cart = append(s.cart, item)
	return item
}

// RemoveFromCart drops every entry carrying the given product id and returns
// how many were removed. Remove-all matches the shop's cart semantics: the
// remove action clears all copies of a product, not just the first.
func (s *Session) RemoveFromCart(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	kept := s.cart[:0]
	removed := 0
	for _, item := range s.cart {
		if item.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.cart = kept
	return removed
}

func (s *Session) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Session) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartTotal(s.cart)
}

func (s *Session) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// AppendMessage adds one transcript entry. The transcript only ever grows;
// Reset is the single exception.
func (s *Session) AppendMessage(role, content string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	msg := models.ChatMessage{Role: role, Content: content, CreatedAt: time.Now()}
	s.messages = append(s.messages, msg)
	return msg
}

func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) SetDeliveryAddress(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.deliveryAddress = address
}

func (s *Session) DeliveryAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deliveryAddress
}

func (s *Session) SetPaymentMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.paymentMethod = method
}

func (s *Session) PaymentMethod() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

func (s *Session) SetStep(step CheckoutStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.step = step
}

func (s *Session) Step() CheckoutStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) SetCurrentOrder(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrderID = id
}

func (s *Session) CurrentOrderID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentOrderID
}

func (s *Session) ClearCurrentOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentOrderID = 0
}

// Reset wipes the session back to a fresh state, keeping its id.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cart = nil
	s.messages = nil
	s.deliveryAddress = ""
	s.paymentMethod = ""
	s.step = StepNone
	s.currentOrderID = 0
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
