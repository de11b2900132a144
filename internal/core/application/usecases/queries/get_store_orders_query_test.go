package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStoreOrdersQuery_Valid(t *testing.T) {
	storeID := kernel.NewUUID()

	query, err := queries.NewGetStoreOrdersQuery(storeID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, storeID.IsEqual(query.StoreID()))
}

func TestNewGetStoreOrdersQuery_InvalidStoreID(t *testing.T) {
	_, err := queries.NewGetStoreOrdersQuery(kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetStoreOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStoreOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStoreOrdersQueryIsNotConstructed)
}
