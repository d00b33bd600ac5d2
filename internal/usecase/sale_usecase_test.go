package usecase

import (
	"testing"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	referrerdto "github.com/driveline/autosales-service/internal/usecase/dto/referrer"
	saledto "github.com/driveline/autosales-service/internal/usecase/dto/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSale_ComputesAndStoresTotalCommission(t *testing.T) {
	env := newTestEnv(t)

	saleID, err := env.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		Date:              monthDate(5),
		CustomerFirstName: "Alice",
		FrontEndProfit:    1200,
		BackEndProfit:     800,
		BonusAmount:       100,
		AftermarketProducts: []domain.AftermarketProduct{
			{Name: "warranty", Profit: 900, Commission: 90},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, saleID)

	sale, err := env.sales.GetSaleByID(testOwner, saleID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, 2190.0, sale.TotalCommission)
	assert.Equal(t, domain.ComputeTotalCommission(sale), sale.TotalCommission)
}

func TestAddSale_ZeroDateDefaultsToNow(t *testing.T) {
	env := newTestEnv(t)

	saleID, err := env.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		CustomerFirstName: "Alice",
		FrontEndProfit:    500,
	})
	require.NoError(t, err)

	sale, err := env.sales.GetSaleByID(testOwner, saleID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.WithinDuration(t, time.Now().UTC(), sale.Date, time.Minute)
}

func TestAddSale_WithReferrerAttribution(t *testing.T) {
	env := newTestEnv(t)

	referrerID, err := env.referrers.AddReferrer(&referrerdto.CreateReferrerInput{
		OwnerID: testOwner,
		Name:    "Bob Smith",
	})
	require.NoError(t, err)

	_, err = env.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		CustomerFirstName: "Alice",
		IsFlat:            true,
		FlatAmount:        600,
		ReferrerID:        referrerID,
	})
	require.NoError(t, err)

	referrer := requireReferrer(t, env, referrerID)
	assert.Equal(t, 1, referrer.ReferralCount)
	assert.Equal(t, 600.0, referrer.TotalCommissionGenerated)
	assert.NotNil(t, referrer.LastReferralDate)
}

func TestAddSale_DanglingReferrerFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		CustomerFirstName: "Alice",
		ReferrerID:        "ghost",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReferrerNotFound)

	sales, err := env.sales.GetAllSales(testOwner)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestUpdateSale_RecomputesCommissionFromMerge(t *testing.T) {
	env := newTestEnv(t)

	saleID, err := env.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		CustomerFirstName: "Alice",
		FrontEndProfit:    1000,
		BackEndProfit:     500,
	})
	require.NoError(t, err)

	isFlat := true
	flatAmount := 400.0
	require.NoError(t, env.sales.UpdateSale(testOwner, saleID, &saledto.UpdateSaleInput{
		IsFlat:     &isFlat,
		FlatAmount: &flatAmount,
	}))

	sale, err := env.sales.GetSaleByID(testOwner, saleID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, 400.0, sale.TotalCommission)
	// The split fields keep their stored values; they are just inactive.
	assert.Equal(t, 1000.0, sale.FrontEndProfit)
}

func TestUpdateSale_MissingSaleIsSilentNoop(t *testing.T) {
	env := newTestEnv(t)

	bonus := 50.0
	require.NoError(t, env.sales.UpdateSale(testOwner, "nope", &saledto.UpdateSaleInput{
		BonusAmount: &bonus,
	}))
}

func TestGetSalesForMonth(t *testing.T) {
	env := newTestEnv(t)

	for _, date := range []time.Time{
		monthDate(3),
		monthDate(28),
		time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
	} {
		_, err := env.sales.AddSale(&saledto.CreateSaleInput{
			OwnerID:           testOwner,
			Date:              date,
			CustomerFirstName: "Alice",
			FrontEndProfit:    100,
		})
		require.NoError(t, err)
	}

	march, err := env.sales.GetSalesForMonth(testOwner, 2026, time.March)
	require.NoError(t, err)
	assert.Len(t, march, 2)

	april, err := env.sales.GetSalesForMonth(testOwner, 2026, time.April)
	require.NoError(t, err)
	assert.Len(t, april, 1)
}

func TestDeleteSale(t *testing.T) {
	env := newTestEnv(t)

	saleID, err := env.sales.AddSale(&saledto.CreateSaleInput{
		OwnerID:           testOwner,
		CustomerFirstName: "Alice",
	})
	require.NoError(t, err)

	require.NoError(t, env.sales.DeleteSale(testOwner, saleID))

	sale, err := env.sales.GetSaleByID(testOwner, saleID)
	require.NoError(t, err)
	assert.Nil(t, sale)
}
