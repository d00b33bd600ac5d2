package repository

import (
	"testing"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferral(id, referrerID string, status domain.ReferralStatus) *domain.Referral {
	now := time.Now().UTC()
	return &domain.Referral{
		ID:         id,
		OwnerID:    testOwner,
		ReferrerID: referrerID,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "555-0199",
		Date:       day(3),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCoordinator_SaleAttributionUpdatesReferrer(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	referrerRepo := NewDefaultReferrerRepository(db)

	seedReferrer(t, db, "ref-1", 2, 1000)

	sale := newSale("sale-1", day(10))
	sale.ReferrerID = "ref-1"
	require.NoError(t, coordinator.CreateSaleWithAttribution(sale))

	referrer, err := referrerRepo.GetReferrerByID(testOwner, "ref-1")
	require.NoError(t, err)
	require.NotNil(t, referrer)
	assert.Equal(t, 3, referrer.ReferralCount)
	assert.Equal(t, 2500.0, referrer.TotalCommissionGenerated)
	require.NotNil(t, referrer.LastReferralDate)
}

func TestCoordinator_SaleWithoutReferrerLeavesCountersAlone(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	referrerRepo := NewDefaultReferrerRepository(db)

	seedReferrer(t, db, "ref-1", 2, 1000)
	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-1", day(10))))

	referrer, err := referrerRepo.GetReferrerByID(testOwner, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, 2, referrer.ReferralCount)
	assert.Equal(t, 1000.0, referrer.TotalCommissionGenerated)
	assert.Nil(t, referrer.LastReferralDate)
}

func TestCoordinator_DanglingReferrerRollsBackSale(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	saleRepo := NewDefaultSaleRepository(db)

	sale := newSale("sale-1", day(10))
	sale.ReferrerID = "ghost"
	err := coordinator.CreateSaleWithAttribution(sale)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)
	assert.ErrorIs(t, err, domain.ErrReferrerNotFound)

	// The sale insert rolled back with the failed attribution.
	stored, err := saleRepo.GetSaleByID(testOwner, "sale-1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCoordinator_ConvertReferral(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	referrerRepo := NewDefaultReferrerRepository(db)
	referralRepo := NewDefaultReferralRepository(db)
	customerRepo := NewDefaultCustomerRepository(db)

	seedReferrer(t, db, "ref-1", 3, 4000)
	require.NoError(t, referralRepo.CreateReferral(newReferral("r-1", "ref-1", domain.ReferralStatusContacted)))

	result, err := coordinator.ConvertReferral(testOwner, "r-1", 1800)
	require.NoError(t, err)
	require.True(t, result.Converted)
	require.NotEmpty(t, result.CustomerID)

	// Customer synthesized from the referral's contact fields.
	customer, err := customerRepo.GetCustomerByID(testOwner, result.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Jane Doe", customer.Name)
	assert.Equal(t, "jane@example.com", customer.Email)
	assert.True(t, customer.IsReferral)
	require.NotNil(t, customer.ReferredBy)
	assert.Equal(t, "ref-1", customer.ReferredBy.ReferrerID)
	assert.True(t, day(3).Equal(customer.ReferredBy.ReferralDate))

	// Referrer counters bumped once.
	referrer, err := referrerRepo.GetReferrerByID(testOwner, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, 4, referrer.ReferralCount)
	assert.Equal(t, 5800.0, referrer.TotalCommissionGenerated)

	// Referral record removed.
	referral, err := referralRepo.GetReferralByID(testOwner, "r-1")
	require.NoError(t, err)
	assert.Nil(t, referral)
}

func TestCoordinator_ConvertReferralIdempotentUnderRetry(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	referrerRepo := NewDefaultReferrerRepository(db)
	customerRepo := NewDefaultCustomerRepository(db)
	referralRepo := NewDefaultReferralRepository(db)

	seedReferrer(t, db, "ref-1", 0, 0)
	require.NoError(t, referralRepo.CreateReferral(newReferral("r-1", "ref-1", domain.ReferralStatusPending)))

	first, err := coordinator.ConvertReferral(testOwner, "r-1", 900)
	require.NoError(t, err)
	require.True(t, first.Converted)

	second, err := coordinator.ConvertReferral(testOwner, "r-1", 900)
	require.NoError(t, err)
	assert.False(t, second.Converted)
	assert.Empty(t, second.CustomerID)

	// No duplicate customer, no double counter bump.
	customers, err := customerRepo.GetAllCustomers(testOwner)
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	referrer, err := referrerRepo.GetReferrerByID(testOwner, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, 1, referrer.ReferralCount)
	assert.Equal(t, 900.0, referrer.TotalCommissionGenerated)
}

func TestCoordinator_ConvertMissingReferralIsNoop(t *testing.T) {
	coordinator := NewDefaultTxCoordinator(setupTestDB(t))

	result, err := coordinator.ConvertReferral(testOwner, "nope", 100)
	require.NoError(t, err)
	assert.False(t, result.Converted)
}

func TestCoordinator_ConversionDeduplicatesEmail(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	customerRepo := NewDefaultCustomerRepository(db)
	referralRepo := NewDefaultReferralRepository(db)

	seedReferrer(t, db, "ref-1", 0, 0)
	require.NoError(t, customerRepo.CreateCustomer(newCustomer("existing", "Jane Doe", "jane@example.com")))
	require.NoError(t, referralRepo.CreateReferral(newReferral("r-1", "ref-1", domain.ReferralStatusPending)))

	result, err := coordinator.ConvertReferral(testOwner, "r-1", 0)
	require.NoError(t, err)
	require.True(t, result.Converted)

	synthesized, err := customerRepo.GetCustomerByID(testOwner, result.CustomerID)
	require.NoError(t, err)
	require.NotNil(t, synthesized)
	assert.Equal(t, "jane@example.com-"+result.CustomerID[:6], synthesized.Email)
}

func TestCoordinator_ExportImportRoundTrip(t *testing.T) {
	source := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(source)
	referralRepo := NewDefaultReferralRepository(source)
	customerRepo := NewDefaultCustomerRepository(source)

	seedReferrer(t, source, "ref-1", 2, 3000)
	sale := newSale("sale-1", day(10))
	sale.ReferrerID = "ref-1"
	require.NoError(t, coordinator.CreateSaleWithAttribution(sale))
	require.NoError(t, customerRepo.CreateCustomer(newCustomer("cust-1", "Alice", "a@x.com")))
	require.NoError(t, referralRepo.CreateReferral(newReferral("r-1", "ref-1", domain.ReferralStatusPending)))

	snapshot, err := coordinator.ExportAll(testOwner)
	require.NoError(t, err)
	require.Len(t, snapshot.Sales, 1)
	require.Len(t, snapshot.Customers, 1)
	require.Len(t, snapshot.Referrers, 1)
	require.Len(t, snapshot.Referrals, 1)

	target := setupTestDB(t)
	targetCoordinator := NewDefaultTxCoordinator(target)
	require.NoError(t, targetCoordinator.ImportAll(testOwner, snapshot))

	restored, err := targetCoordinator.ExportAll(testOwner)
	require.NoError(t, err)
	require.Len(t, restored.Sales, 1)
	assert.Equal(t, "sale-1", restored.Sales[0].ID)
	assert.Equal(t, snapshot.Sales[0].TotalCommission, restored.Sales[0].TotalCommission)
	require.Len(t, restored.Referrers, 1)
	assert.Equal(t, 3, restored.Referrers[0].ReferralCount)
	require.Len(t, restored.Customers, 1)
	assert.Equal(t, "cust-1", restored.Customers[0].ID)
	require.Len(t, restored.Referrals, 1)
	assert.Equal(t, domain.ReferralStatusPending, restored.Referrals[0].Status)
}

func TestCoordinator_ImportIsUpsert(t *testing.T) {
	db := setupTestDB(t)
	coordinator := NewDefaultTxCoordinator(db)
	customerRepo := NewDefaultCustomerRepository(db)

	require.NoError(t, customerRepo.CreateCustomer(newCustomer("cust-1", "Old Name", "a@x.com")))

	updated := newCustomer("cust-1", "New Name", "a@x.com")
	require.NoError(t, coordinator.ImportAll(testOwner, &domain.Snapshot{
		Customers: []*domain.Customer{updated},
	}))

	stored, err := customerRepo.GetCustomerByID(testOwner, "cust-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Name", stored.Name)

	all, err := customerRepo.GetAllCustomers(testOwner)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
