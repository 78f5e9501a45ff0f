package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rupeshmutkule/Shophub/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (customer_name, email, address, city, zip, items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return models.DB.QueryRow(
		ctx,
		query,
		order.CustomerName,
		order.Email,
		order.Address,
		order.City,
		order.Zip,
		order.Items,
		order.Total,
		order.Status,
		time.Now(),
	).Scan(&order.ID, &order.CreatedAt)
}

// List returns orders newest first. A non-empty email restricts the result to
// that customer, compared case-insensitively ("A@B.com" owns "a@b.com"'s
// orders). An empty email returns everything (admin view).
func (r *OrderRepository) List(ctx context.Context, email string) ([]models.Order, error) {
	query := `
		SELECT id, customer_name, email, address, city, zip, items, total, status, created_at
		FROM orders
	`
	args := []interface{}{}

	if email != "" {
		query += " WHERE LOWER(email) = LOWER($1)"
		args = append(args, email)
	}
	query += " ORDER BY created_at DESC"

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.Email,
			&o.Address,
			&o.City,
			&o.Zip,
			&o.Items,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// UpdateStatus overwrites the status field as-is and returns the updated
// order. An unknown id yields (nil, nil), which the HTTP layer serializes to
// JSON null the way the original backend did.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	query := `
		UPDATE orders SET status = $1 WHERE id = $2
		RETURNING id, customer_name, email, address, city, zip, items, total, status, created_at
	`

	o := &models.Order{}
	err := models.DB.QueryRow(ctx, query, status, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.Email,
		&o.Address,
		&o.City,
		&o.Zip,
		&o.Items,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return o, nil
}

// Delete removes the order unconditionally. Deleting an id that does not
// exist is not an error; the caller acks it the same way.
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	_, err := models.DB.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	return err
}
