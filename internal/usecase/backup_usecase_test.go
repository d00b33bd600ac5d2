package usecase

import (
	"testing"

	customerdto "github.com/driveline/autosales-service/internal/usecase/dto/customer"
	referrerdto "github.com/driveline/autosales-service/internal/usecase/dto/referrer"
	saledto "github.com/driveline/autosales-service/internal/usecase/dto/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupExportImportRoundTrip(t *testing.T) {
	source := newTestEnv(t)

	referrerID, err := source.referrers.AddReferrer(&referrerdto.CreateReferrerInput{
		OwnerID: testOwner,
		Name:    "Bob Smith",
	})
	require.NoError(t, err)

	saleID, err := source.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		CustomerFirstName: "Alice",
		IsFlat:            true,
		FlatAmount:        1200,
		ReferrerID:        referrerID,
	})
	require.NoError(t, err)

	customerID, err := source.customers.AddCustomer(&customerdto.CreateCustomerInput{
		OwnerID: testOwner,
		Name:    "Alice Jones",
		Email:   "a@b.com",
	})
	require.NoError(t, err)

	snapshot, err := source.backup.Export(testOwner)
	require.NoError(t, err)

	target := newTestEnv(t)
	require.NoError(t, target.backup.Import(testOwner, snapshot))

	sale, err := target.sales.GetSaleByID(testOwner, saleID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, 1200.0, sale.TotalCommission)

	customer, err := target.customers.GetCustomerByID(testOwner, customerID)
	require.NoError(t, err)
	require.NotNil(t, customer)

	referrer := requireReferrer(t, target, referrerID)
	assert.Equal(t, 1, referrer.ReferralCount)
	assert.Equal(t, 1200.0, referrer.TotalCommissionGenerated)
}
