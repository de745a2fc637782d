package wishlist_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/storefront-core/internal/domain"
	"github.com/nikolayk812/storefront-core/internal/store"
	"github.com/nikolayk812/storefront-core/internal/wishlist"
)

type wishlistManagerSuite struct {
	suite.Suite

	adapter *store.Adapter
	manager *wishlist.Manager
}

func TestWishlistManagerSuite(t *testing.T) {
	suite.Run(t, new(wishlistManagerSuite))
}

// before each test
func (s *wishlistManagerSuite) SetupTest() {
	s.adapter = store.NewAdapter(store.NewMemory(), nil)
	s.manager = wishlist.NewManager(s.T().Context(), s.adapter)
}

func (s *wishlistManagerSuite) TestAddIsIdempotent() {
	t := s.T()
	ctx := t.Context()

	item := randomWishlistItem()

	// add(x); add(x) must equal a single add(x).
	s.manager.Add(ctx, item)
	s.manager.Add(ctx, item)

	items := s.manager.Items()
	require.Len(t, items, 1)
	assertWishlistItem(t, item, items[0])
	assert.Equal(t, 1, s.manager.Count())
}

func (s *wishlistManagerSuite) TestRemove() {
	t := s.T()
	ctx := t.Context()

	item := randomWishlistItem()
	s.manager.Add(ctx, item)

	assert.True(t, s.manager.Remove(ctx, item.ID))
	assert.False(t, s.manager.Remove(ctx, item.ID), "removing a non-existent id is a safe no-op")
	assert.False(t, s.manager.Contains(item.ID))
}

func (s *wishlistManagerSuite) TestToggle() {
	t := s.T()
	ctx := t.Context()

	item := randomWishlistItem()

	assert.True(t, s.manager.Toggle(ctx, item))
	assert.True(t, s.manager.Contains(item.ID))

	assert.False(t, s.manager.Toggle(ctx, item))
	assert.False(t, s.manager.Contains(item.ID))
}

func (s *wishlistManagerSuite) TestClear() {
	ctx := s.T().Context()

	s.manager.Add(ctx, randomWishlistItem())
	s.manager.Add(ctx, randomWishlistItem())
	s.manager.Clear(ctx)

	s.Empty(s.manager.Items())
	s.Zero(s.manager.Count())
}

func (s *wishlistManagerSuite) TestPersistenceRoundTrip() {
	t := s.T()
	ctx := t.Context()

	items := []domain.WishlistItem{randomWishlistItem(), randomWishlistItem()}
	for _, item := range items {
		s.manager.Add(ctx, item)
	}

	reloaded := wishlist.NewManager(ctx, s.adapter)

	got := reloaded.Items()
	require.Len(t, got, len(items))
	for i := range items {
		assertWishlistItem(t, items[i], got[i])
	}
}

func randomWishlistItem() domain.WishlistItem {
	return domain.WishlistItem{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.ProductName(),
		Image:    gofakeit.URL(),
		Category: gofakeit.ProductCategory(),
		Price: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
			Currency: currency.MustParseISO("PKR"),
		},
	}
}

func assertWishlistItem(t *testing.T, expected, actual domain.WishlistItem) {
	t.Helper()

	opts := cmp.Options{
		cmp.Comparer(func(x, y domain.Money) bool { return x.Equal(y) }),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
