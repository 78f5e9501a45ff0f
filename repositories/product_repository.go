package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rupeshmutkule/Shophub/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, price, rating, photo, description, created_at
		FROM products
		ORDER BY id
	`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.Photo, &p.Description, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, price, rating, photo, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return models.DB.QueryRow(
		ctx,
		query,
		product.Name,
		product.Price,
		product.Rating,
		product.Photo,
		product.Description,
		time.Now(),
	).Scan(&product.ID, &product.CreatedAt)
}

// Update overwrites the row with the supplied fields and returns the updated
// product, or (nil, nil) for an unknown id.
func (r *ProductRepository) Update(ctx context.Context, id int, product *models.Product) (*models.Product, error) {
	query := `
		UPDATE products
		SET name = $1, price = $2, rating = $3, photo = $4, description = $5
		WHERE id = $6
		RETURNING id, name, price, rating, photo, description, created_at
	`

	p := &models.Product{}
	err := models.DB.QueryRow(ctx, query,
		product.Name, product.Price, product.Rating, product.Photo, product.Description, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.Photo, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := models.DB.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}

// InsertBatch inserts seed products in one transaction.
func (r *ProductRepository) InsertBatch(ctx context.Context, products []models.Product) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	for _, p := range products {
		_, err := tx.Exec(ctx,
			"INSERT INTO products (name, price, rating, photo, description, created_at) VALUES ($1,$2,$3,$4,$5,$6)",
			p.Name, p.Price, p.Rating, p.Photo, p.Description, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
