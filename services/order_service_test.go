package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeshmutkule/Shophub/models"
)

type mockOrderRepository struct {
	createFunc       func(ctx context.Context, order *models.Order) error
	listFunc         func(ctx context.Context, email string) ([]models.Order, error)
	updateStatusFunc func(ctx context.Context, id int, status string) (*models.Order, error)
	deleteFunc       func(ctx context.Context, id int) error
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return m.createFunc(ctx, order)
}

func (m *mockOrderRepository) List(ctx context.Context, email string) ([]models.Order, error) {
	return m.listFunc(ctx, email)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id int, status string) (*models.Order, error) {
	return m.updateStatusFunc(ctx, id, status)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id int) error {
	return m.deleteFunc(ctx, id)
}

func TestOrderService_Create(t *testing.T) {
	t.Run("persists_pending_order_with_client_total", func(t *testing.T) {
		var stored *models.Order
		repo := &mockOrderRepository{
			createFunc: func(ctx context.Context, order *models.Order) error {
				order.ID = 42
				order.CreatedAt = time.Now()
				stored = order
				return nil
			},
		}
		svc := NewOrderService(repo, nil)

		// The total deliberately disagrees with the items: the service must
		// store it verbatim rather than recompute it.
		order, err := svc.Create(context.Background(), models.CreateOrderRequest{
			CustomerName: "Jane Doe",
			Email:        "a@b.com",
			Address:      "1 Main St",
			City:         "Pune",
			Zip:          "411001",
			Items:        []models.OrderItem{{Name: "X", Price: 10}},
			Total:        99.99,
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 42, order.ID)
		assert.Equal(t, models.OrderStatusPending, stored.Status)
		assert.Equal(t, 99.99, stored.Total)
		assert.Equal(t, "a@b.com", stored.Email)
		assert.Len(t, stored.Items, 1)
	})

	t.Run("storage_failure_propagates", func(t *testing.T) {
		repo := &mockOrderRepository{
			createFunc: func(ctx context.Context, order *models.Order) error {
				return errors.New("connection refused")
			},
		}
		svc := NewOrderService(repo, nil)

		_, err := svc.Create(context.Background(), models.CreateOrderRequest{})
		assert.EqualError(t, err, "connection refused")
	})
}

func TestOrderService_SetStatus(t *testing.T) {
	t.Run("accepted_updates_in_place", func(t *testing.T) {
		repo := &mockOrderRepository{
			updateStatusFunc: func(ctx context.Context, id int, status string) (*models.Order, error) {
				return &models.Order{ID: id, Status: status}, nil
			},
			deleteFunc: func(ctx context.Context, id int) error {
				t.Fatal("accepted must not delete")
				return nil
			},
		}
		svc := NewOrderService(repo, nil)

		order, deleted, err := svc.SetStatus(context.Background(), 7, models.OrderStatusAccepted)
		require.NoError(t, err)
		assert.False(t, deleted)
		require.NotNil(t, order)
		assert.Equal(t, models.OrderStatusAccepted, order.Status)
	})

	t.Run("rejected_deletes_instead_of_storing", func(t *testing.T) {
		deletedID := 0
		repo := &mockOrderRepository{
			updateStatusFunc: func(ctx context.Context, id int, status string) (*models.Order, error) {
				t.Fatal("rejected must not write a status")
				return nil, nil
			},
			deleteFunc: func(ctx context.Context, id int) error {
				deletedID = id
				return nil
			},
		}
		svc := NewOrderService(repo, nil)

		order, deleted, err := svc.SetStatus(context.Background(), 7, models.OrderStatusRejected)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Nil(t, order)
		assert.Equal(t, 7, deletedID)
	})

	t.Run("arbitrary_status_written_through_unchecked", func(t *testing.T) {
		written := ""
		repo := &mockOrderRepository{
			updateStatusFunc: func(ctx context.Context, id int, status string) (*models.Order, error) {
				written = status
				return &models.Order{ID: id, Status: status}, nil
			},
		}
		svc := NewOrderService(repo, nil)

		_, deleted, err := svc.SetStatus(context.Background(), 1, "on-hold")
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Equal(t, "on-hold", written)
	})

	t.Run("unknown_id_yields_nil_order", func(t *testing.T) {
		repo := &mockOrderRepository{
			updateStatusFunc: func(ctx context.Context, id int, status string) (*models.Order, error) {
				return nil, nil
			},
		}
		svc := NewOrderService(repo, nil)

		order, deleted, err := svc.SetStatus(context.Background(), 999, models.OrderStatusAccepted)
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Nil(t, order)
	})
}

func TestOrderService_Delete_UnknownIDIsNotAnError(t *testing.T) {
	repo := &mockOrderRepository{
		deleteFunc: func(ctx context.Context, id int) error { return nil },
	}
	svc := NewOrderService(repo, nil)

	assert.NoError(t, svc.Delete(context.Background(), 12345))
}

// fakeOrderStore mimics the repository contract in memory: case-insensitive
// email filtering and newest-first ordering.
type fakeOrderStore struct {
	nextID int
	orders []models.Order
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	f.nextID++
	order.ID = f.nextID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderStore) List(_ context.Context, email string) ([]models.Order, error) {
	result := []models.Order{}
	for _, o := range f.orders {
		if email == "" || strings.EqualFold(o.Email, email) {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id int, status string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id int) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestOrderService_CheckoutScenario(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(store, nil)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first, err := svc.Create(ctx, models.CreateOrderRequest{
		Email: "a@b.com",
		Items: []models.OrderItem{{Name: "X", Price: 10}},
		Total: 10,
	})
	require.NoError(t, err)
	store.orders[0].CreatedAt = base

	second, err := svc.Create(ctx, models.CreateOrderRequest{
		Email: "a@b.com",
		Items: []models.OrderItem{{Name: "Y", Price: 20}},
		Total: 20,
	})
	require.NoError(t, err)
	store.orders[1].CreatedAt = base.Add(time.Minute)

	third, err := svc.Create(ctx, models.CreateOrderRequest{
		Email: "other@example.com",
		Items: []models.OrderItem{{Name: "Z", Price: 30}},
		Total: 30,
	})
	require.NoError(t, err)
	store.orders[2].CreatedAt = base.Add(2 * time.Minute)

	// Ownership filter is a case-insensitive exact match.
	mine, err := svc.ListForCustomer(ctx, "A@B.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "a@b.com", o.Email)
		assert.Equal(t, models.OrderStatusPending, o.Status)
	}
	// Newest first.
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	// Admin view returns everything, strictly newest first.
	all, err := svc.ListForCustomer(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{third.ID, second.ID, first.ID}, []int{all[0].ID, all[1].ID, all[2].ID})

	// Accept keeps the order around with the new status.
	accepted, deleted, err := svc.SetStatus(ctx, first.ID, models.OrderStatusAccepted)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, models.OrderStatusAccepted, accepted.Status)

	mine, err = svc.ListForCustomer(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// Reject removes the order from every subsequent listing.
	_, deleted, err = svc.SetStatus(ctx, second.ID, models.OrderStatusRejected)
	require.NoError(t, err)
	assert.True(t, deleted)

	mine, err = svc.ListForCustomer(ctx, "a@b.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	all, err = svc.ListForCustomer(ctx, "")
	require.NoError(t, err)
	for _, o := range all {
		assert.NotEqual(t, second.ID, o.ID)
	}
}
