package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSale(id string, date time.Time) *domain.Sale {
	return &domain.Sale{
		ID:      id,
		OwnerID: testOwner,
		Date:    date,
		CustomerInfo: domain.CustomerInfo{
			FirstName: "Alice",
			LastName:  "Jones",
		},
		FrontEndProfit:  1000,
		BackEndProfit:   500,
		TotalCommission: 1500,
		CreatedAt:       date,
		UpdatedAt:       date,
	}
}

func TestSaleRepository_GetAllSalesDateAscending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDefaultSaleRepository(db)
	coordinator := NewDefaultTxCoordinator(db)

	for _, d := range []int{20, 5, 12} {
		require.NoError(t, coordinator.CreateSaleWithAttribution(newSale(fmt.Sprintf("sale-%d", d), day(d))))
	}

	sales, err := repo.GetAllSales(testOwner)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.True(t, sales[0].Date.Before(sales[1].Date))
	assert.True(t, sales[1].Date.Before(sales[2].Date))
}

func TestSaleRepository_GetSalesByPeriodHalfOpen(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDefaultSaleRepository(db)
	coordinator := NewDefaultTxCoordinator(db)

	march1 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	april1 := march1.AddDate(0, 1, 0)

	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-feb", march1.Add(-time.Hour))))
	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-mar-start", march1)))
	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-mar-mid", day(15))))
	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-apr", april1)))

	sales, err := repo.GetSalesByPeriod(testOwner, march1, april1)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "sale-mar-start", sales[0].ID)
	assert.Equal(t, "sale-mar-mid", sales[1].ID)
}

func TestSaleRepository_GetSaleByIDMissing(t *testing.T) {
	repo := NewDefaultSaleRepository(setupTestDB(t))

	sale, err := repo.GetSaleByID(testOwner, "nope")
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestSaleRepository_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDefaultSaleRepository(db)
	coordinator := NewDefaultTxCoordinator(db)

	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-1", day(1))))

	sale, err := repo.GetSaleByID("another-owner", "sale-1")
	require.NoError(t, err)
	assert.Nil(t, sale)

	sales, err := repo.GetAllSales("another-owner")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaleRepository_UpdateSaleRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDefaultSaleRepository(db)
	coordinator := NewDefaultTxCoordinator(db)

	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-1", day(1))))

	stored, err := repo.GetSaleByID(testOwner, "sale-1")
	require.NoError(t, err)
	require.NotNil(t, stored)

	stored.IsFlat = true
	stored.FlatAmount = 750
	stored.VehicleInfo = &domain.VehicleInfo{VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord"}
	stored.AftermarketProducts = []domain.AftermarketProduct{{Name: "warranty", Profit: 800, Commission: 80}}
	stored.TotalCommission = domain.ComputeTotalCommission(stored)
	require.NoError(t, repo.UpdateSale(stored))

	reloaded, err := repo.GetSaleByID(testOwner, "sale-1")
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.IsFlat)
	assert.Equal(t, 830.0, reloaded.TotalCommission)
	require.NotNil(t, reloaded.VehicleInfo)
	assert.Equal(t, "Honda", reloaded.VehicleInfo.Make)
	require.Len(t, reloaded.AftermarketProducts, 1)
	assert.Equal(t, "warranty", reloaded.AftermarketProducts[0].Name)
}

func TestSaleRepository_UpdateMissingSaleIsNoop(t *testing.T) {
	repo := NewDefaultSaleRepository(setupTestDB(t))

	ghost := newSale("ghost", day(1))
	require.NoError(t, repo.UpdateSale(ghost))

	sale, err := repo.GetSaleByID(testOwner, "ghost")
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestSaleRepository_DeleteSale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDefaultSaleRepository(db)
	coordinator := NewDefaultTxCoordinator(db)

	require.NoError(t, coordinator.CreateSaleWithAttribution(newSale("sale-1", day(1))))
	require.NoError(t, repo.DeleteSale(testOwner, "sale-1"))

	sale, err := repo.GetSaleByID(testOwner, "sale-1")
	require.NoError(t, err)
	assert.Nil(t, sale)

	// Deleting again is a silent no-op.
	require.NoError(t, repo.DeleteSale(testOwner, "sale-1"))
}
