package store_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nikolayk812/storefront-core/internal/port"
	"github.com/nikolayk812/storefront-core/internal/store"
)

type postgresStoreSuite struct {
	suite.Suite

	store port.Store
	pool  *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(postgresStoreSuite))
}

// before all tests in the suite
func (suite *postgresStoreSuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.store, err = store.NewPostgres(suite.pool)
	suite.NoError(err)
}

// after all tests in the suite
func (suite *postgresStoreSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *postgresStoreSuite) TestSetGet() {
	tests := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{
			name:  "set and get blob: ok",
			key:   gofakeit.UUID(),
			value: `{"items":[{"id":"p1","quantity":2}],"itemCount":2}`,
		},
		{
			name:  "empty json object: ok",
			key:   gofakeit.UUID(),
			value: `{}`,
		},
		{
			name:      "empty key: error",
			key:       "",
			value:     `{}`,
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.store.Set(ctx, tt.key, []byte(tt.value))
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			value, ok, err := suite.store.Get(ctx, tt.key)
			require.NoError(t, err)
			require.True(t, ok)
			suite.JSONEq(tt.value, string(value))
		})
	}
}

func (suite *postgresStoreSuite) TestSetOverwrites() {
	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.store.Set(ctx, key, []byte(`{"v":1}`)))
	require.NoError(t, suite.store.Set(ctx, key, []byte(`{"v":2}`)))

	value, ok, err := suite.store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	suite.JSONEq(`{"v":2}`, string(value))
}

func (suite *postgresStoreSuite) TestGetMissingKey() {
	t := suite.T()

	_, ok, err := suite.store.Get(t.Context(), gofakeit.UUID())
	require.NoError(t, err)
	suite.False(ok)
}

func (suite *postgresStoreSuite) TestDelete() {
	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.store.Set(ctx, key, []byte(`{}`)))
	require.NoError(t, suite.store.Delete(ctx, key))

	_, ok, err := suite.store.Get(ctx, key)
	require.NoError(t, err)
	suite.False(ok)

	// Deleting a missing key is a no-op.
	require.NoError(t, suite.store.Delete(ctx, key))
}
