package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalCommission_Split(t *testing.T) {
	sale := &Sale{
		FrontEndProfit: 1200,
		BackEndProfit:  800,
		BonusAmount:    150,
	}
	assert.Equal(t, 2150.0, ComputeTotalCommission(sale))
}

func TestComputeTotalCommission_FlatIgnoresSplit(t *testing.T) {
	sale := &Sale{
		IsFlat:         true,
		FlatAmount:     500,
		FrontEndProfit: 1200,
		BackEndProfit:  800,
	}
	assert.Equal(t, 500.0, ComputeTotalCommission(sale))
}

func TestComputeTotalCommission_AftermarketAndBonus(t *testing.T) {
	sale := &Sale{
		IsFlat:      true,
		FlatAmount:  500,
		BonusAmount: 100,
		AftermarketProducts: []AftermarketProduct{
			{Name: "warranty", Profit: 900, Commission: 90},
			{Name: "tint", Profit: 200, Commission: 40},
		},
	}
	assert.Equal(t, 730.0, ComputeTotalCommission(sale))
}

func TestComputeTotalCommission_ZeroSale(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotalCommission(&Sale{}))
}

func TestComputeTotalCommission_NegativeProfitPassesThrough(t *testing.T) {
	sale := &Sale{
		FrontEndProfit: -300,
		BackEndProfit:  500,
	}
	assert.Equal(t, 200.0, ComputeTotalCommission(sale))
}
