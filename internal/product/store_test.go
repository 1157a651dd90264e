package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSeedsCatalog(t *testing.T) {
	s := NewStore()

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Product 1", got[0].Name)
	assert.True(t, got[1].Price.Equal(decimal.RequireFromString("29.99")))
	assert.Equal(t, 200, got[2].StockQuantity)
}

func TestGetNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get(99)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateAllocatesNextID(t *testing.T) {
	s := NewStore()

	p := s.Create(Product{Name: "Product 4", Price: decimal.RequireFromString("49.99")})
	assert.Equal(t, 4, p.ID)

	got, err := s.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "Product 4", got.Name)
	assert.Len(t, s.List(), 4)
}
