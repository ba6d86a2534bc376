package store

import (
	"sync"
	"time"

	"mtnshop/internal/models"
)

// Ledger is the append-only list of placed orders. Order ids are sequential:
// the nth order placed gets id n. Orders are never removed.
type Ledger struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Place snapshots the given cart into a new Pending order. The total is the
// sum of item prices at placement time.
func (l *Ledger) Place(sessionID string, items []models.CartItem, address, payment string) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	order := models.Order{
		ID:              len(l.orders) + 1,
		SessionID:       sessionID,
		Items:           snapshot,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
		DeliveryAddress: address,
		PaymentMethod:   payment,
		Total:           models.CartTotal(snapshot),
	}
	l.orders = append(l.orders, order)
	return order, nil
}

func (l *Ledger) Get(id int) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, o := range l.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Cancel sets the order to Cancelled and reports true only when the order
// exists and is still Pending or Processing. Anything else is a no-op false.
func (l *Ledger) Cancel(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id && l.orders[i].Cancellable() {
			l.orders[i].Status = models.StatusCancelled
			return true
		}
	}
	return false
}

// SetStatus overwrites the order status unconditionally. There is no status
// state machine; the admin may move an order between any two statuses.
func (l *Ledger) SetStatus(id int, status models.OrderStatus) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders[i].Status = status
			return l.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (l *Ledger) All() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *Ledger) BySession(sessionID string) []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Order, 0)
	for _, o := range l.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}
