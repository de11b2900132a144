package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStoreStatsQuery_Valid(t *testing.T) {
	storeID := kernel.NewUUID()

	query, err := queries.NewGetStoreStatsQuery(storeID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, storeID.IsEqual(query.StoreID()))
}

func TestNewGetStoreStatsQuery_InvalidStoreID(t *testing.T) {
	_, err := queries.NewGetStoreStatsQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetStoreStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStoreStatsQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStoreStatsQueryIsNotConstructed)
}
