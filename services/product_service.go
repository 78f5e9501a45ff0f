package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rupeshmutkule/Shophub/models"
)

const defaultSeedURL = "https://fakestoreapi.com/products?limit=25"

// ProductSeedRepository is the slice of product storage the seeder uses.
type ProductSeedRepository interface {
	Count(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, products []models.Product) error
}

// ProductService seeds the catalog from the public fakestore API so a fresh
// deployment has something to show.
type ProductService struct {
	products ProductSeedRepository
	seedURL  string
	client   *http.Client
}

func NewProductService(products ProductSeedRepository) *ProductService {
	return &ProductService{
		products: products,
		seedURL:  defaultSeedURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type seedProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      struct {
		Rate float64 `json:"rate"`
	} `json:"rating"`
}

// Seed fetches up to 25 products and inserts them. It reports seeded=false
// without touching anything when the catalog already holds 25 or more rows.
func (s *ProductService) Seed(ctx context.Context) (bool, error) {
	count, err := s.products.Count(ctx)
	if err != nil {
		return false, err
	}
	if count >= 25 {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.seedURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("seed source returned status %d", resp.StatusCode)
	}

	var external []seedProduct
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return false, err
	}

	products := make([]models.Product, 0, len(external))
	for _, p := range external {
		products = append(products, models.Product{
			Name:        p.Title,
			Price:       p.Price,
			Rating:      p.Rating.Rate,
			Photo:       p.Image,
			Description: p.Description,
		})
	}

	if err := s.products.InsertBatch(ctx, products); err != nil {
		return false, err
	}

	return true, nil
}
