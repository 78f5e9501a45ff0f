package services

import (
	"context"
	"log"

	"github.com/rupeshmutkule/Shophub/models"
)

// OrderRepository is the storage surface the order workflow needs.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, email string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error)
	Delete(ctx context.Context, id int) error
}

// OrderService applies the one state transition the system has and answers
// filtered order queries. Anything it cannot do surfaces as a single generic
// failure; there are no retries and no idempotency, so a duplicate submission
// creates a duplicate order.
type OrderService struct {
	orders OrderRepository
	email  *models.EmailService
}

// NewOrderService wires the repository and an optional email service. A nil
// email service disables confirmation mail.
func NewOrderService(orders OrderRepository, email *models.EmailService) *OrderService {
	return &OrderService{orders: orders, email: email}
}

// Create persists a new pending order. The total is stored exactly as the
// client sent it and is never recomputed from the items.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	order := &models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Address:      req.Address,
		City:         req.City,
		Zip:          req.Zip,
		Items:        req.Items,
		Total:        req.Total,
		Status:       models.OrderStatusPending,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.email != nil && order.Email != "" {
		go func(to string, id int, total float64) {
			if err := s.email.SendOrderConfirmationEmail(to, id, total); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}(order.Email, order.ID, order.Total)
	}

	return order, nil
}

// ListForCustomer returns the given customer's orders, or every order when
// email is empty (admin view). Newest first either way.
func (s *OrderService) ListForCustomer(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.List(ctx, email)
}

// SetStatus applies a status change. "rejected" deletes the order outright
// and reports deleted=true; every other value is written through unchecked
// and the updated order comes back (nil when the id is unknown). Nothing
// stops rejecting an already-accepted order, and concurrent calls on the same
// id are last-write-wins.
func (s *OrderService) SetStatus(ctx context.Context, id int, status string) (*models.Order, bool, error) {
	if status == models.OrderStatusRejected {
		if err := s.orders.Delete(ctx, id); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, false, err
	}
	return order, false, nil
}

// Delete cancels an order by id. There is no ownership check here or at the
// HTTP layer; any caller who knows an id may remove it. Unknown ids ack
// success like real ones.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.orders.Delete(ctx, id)
}
