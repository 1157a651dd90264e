package order

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(productID, quantity int, unitPrice string) Item {
	return Item{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func TestCreateComputesTotal(t *testing.T) {
	s := NewStore()

	o := s.Create(1, []Item{item(10, 2, "19.99")})

	assert.Equal(t, 1, o.ID)
	assert.Equal(t, 1, o.UserID)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("39.98")),
		"got total %s", o.TotalAmount)
	assert.False(t, o.CreatedAt.IsZero())
	assert.Equal(t, "UTC", o.CreatedAt.Location().String())
}

func TestCreateSumsAllItems(t *testing.T) {
	s := NewStore()

	o := s.Create(1, []Item{
		item(10, 2, "19.99"),
		item(11, 1, "0.01"),
		item(12, 3, "100"),
	})

	assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("339.99")),
		"got total %s", o.TotalAmount)
}

func TestCreateEmptyItems(t *testing.T) {
	s := NewStore()

	o := s.Create(7, nil)

	assert.True(t, o.TotalAmount.IsZero())
	assert.NotNil(t, o.Items)
	assert.Empty(t, o.Items)
}

func TestIdentifiersAreMonotonic(t *testing.T) {
	s := NewStore()

	for want := 1; want <= 5; want++ {
		o := s.Create(1, nil)
		assert.Equal(t, want, o.ID)
	}
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	s := NewStore()
	const n = 100

	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Create(1, []Item{item(10, 1, "9.99")}).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, n)
	}
	assert.Len(t, seen, n)
	assert.Len(t, s.List(), n)
}

func TestGetReturnsWhatCreateReturned(t *testing.T) {
	s := NewStore()

	created := s.Create(3, []Item{item(10, 2, "19.99")})

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get(999)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListByUserFiltersInInsertionOrder(t *testing.T) {
	s := NewStore()

	first := s.Create(1, []Item{item(10, 1, "5")})
	s.Create(2, []Item{item(11, 1, "7")})
	second := s.Create(1, []Item{item(12, 1, "9")})

	got := s.ListByUser(1)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)

	assert.Empty(t, s.ListByUser(99))
	assert.NotNil(t, s.ListByUser(99))
}

func TestUpdateStatusOverwritesOnlyStatus(t *testing.T) {
	s := NewStore()

	created := s.Create(1, []Item{item(10, 2, "19.99")})

	updated, err := s.UpdateStatus(created.ID, StatusShipped)
	require.NoError(t, err)

	assert.Equal(t, StatusShipped, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.Items, updated.Items)
	assert.True(t, created.TotalAmount.Equal(updated.TotalAmount))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateStatusAcceptsAnyString(t *testing.T) {
	s := NewStore()
	created := s.Create(1, nil)

	updated, err := s.UpdateStatus(created.ID, Status("On a boat"))
	require.NoError(t, err)
	assert.Equal(t, Status("On a boat"), updated.Status)
}

func TestUpdateStatusNotFoundLeavesStoreUntouched(t *testing.T) {
	s := NewStore()
	created := s.Create(1, nil)

	_, err := s.UpdateStatus(999, StatusShipped)
	require.ErrorIs(t, err, ErrOrderNotFound)

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestReturnedOrdersDoNotAliasStore(t *testing.T) {
	s := NewStore()

	created := s.Create(1, []Item{item(10, 2, "19.99")})
	created.Items[0].Quantity = 100

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)
}
