package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeshmutkule/Shophub/models"
)

type mockSeedRepository struct {
	countFunc       func(ctx context.Context) (int, error)
	insertBatchFunc func(ctx context.Context, products []models.Product) error
}

func (m *mockSeedRepository) Count(ctx context.Context) (int, error) {
	return m.countFunc(ctx)
}

func (m *mockSeedRepository) InsertBatch(ctx context.Context, products []models.Product) error {
	return m.insertBatchFunc(ctx, products)
}

const seedFixture = `[
	{
		"id": 1,
		"title": "Fjallraven Backpack",
		"price": 109.95,
		"description": "Fits 15 inch laptops",
		"image": "https://example.com/backpack.jpg",
		"rating": {"rate": 3.9, "count": 120}
	},
	{
		"id": 2,
		"title": "Mens Casual T-Shirt",
		"price": 22.3,
		"description": "Slim fit",
		"image": "https://example.com/shirt.jpg",
		"rating": {"rate": 4.1, "count": 259}
	}
]`

func TestProductService_Seed(t *testing.T) {
	t.Run("fetches_and_maps_products", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(seedFixture))
		}))
		defer server.Close()

		var inserted []models.Product
		repo := &mockSeedRepository{
			countFunc: func(ctx context.Context) (int, error) { return 0, nil },
			insertBatchFunc: func(ctx context.Context, products []models.Product) error {
				inserted = products
				return nil
			},
		}
		svc := NewProductService(repo)
		svc.seedURL = server.URL

		seeded, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.True(t, seeded)

		require.Len(t, inserted, 2)
		assert.Equal(t, "Fjallraven Backpack", inserted[0].Name)
		assert.Equal(t, 109.95, inserted[0].Price)
		assert.Equal(t, 3.9, inserted[0].Rating)
		assert.Equal(t, "https://example.com/backpack.jpg", inserted[0].Photo)
		assert.Equal(t, "Fits 15 inch laptops", inserted[0].Description)
	})

	t.Run("skips_when_already_seeded", func(t *testing.T) {
		hits := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		repo := &mockSeedRepository{
			countFunc: func(ctx context.Context) (int, error) { return 25, nil },
			insertBatchFunc: func(ctx context.Context, products []models.Product) error {
				t.Fatal("must not insert when already seeded")
				return nil
			},
		}
		svc := NewProductService(repo)
		svc.seedURL = server.URL

		seeded, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.False(t, seeded)
		assert.Zero(t, hits)
	})

	t.Run("upstream_failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		repo := &mockSeedRepository{
			countFunc: func(ctx context.Context) (int, error) { return 0, nil },
			insertBatchFunc: func(ctx context.Context, products []models.Product) error {
				t.Fatal("must not insert on upstream failure")
				return nil
			},
		}
		svc := NewProductService(repo)
		svc.seedURL = server.URL

		seeded, err := svc.Seed(context.Background())
		assert.Error(t, err)
		assert.False(t, seeded)
	})
}
