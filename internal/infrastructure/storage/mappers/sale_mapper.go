package mappers

import (
	"github.com/driveline/autosales-service/internal/domain"
	"github.com/driveline/autosales-service/internal/infrastructure/storage/models"
)

func ToDomainSale(model *models.SaleModel) *domain.Sale {
	return &domain.Sale{
		ID:      model.ID,
		OwnerID: model.OwnerID,
		Date:    model.Date,
		CustomerInfo: domain.CustomerInfo{
			FirstName: model.CustomerFirstName,
			LastName:  model.CustomerLastName,
			Email:     model.CustomerEmail,
			Phone:     model.CustomerPhone,
		},
		VehicleInfo:         model.VehicleInfo,
		IsFlat:              model.IsFlat,
		FlatAmount:          model.FlatAmount,
		FrontEndProfit:      model.FrontEndProfit,
		BackEndProfit:       model.BackEndProfit,
		BonusAmount:         model.BonusAmount,
		AftermarketProducts: model.AftermarketProducts,
		ReferrerID:          model.ReferrerID,
		TotalCommission:     model.TotalCommission,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMSale(sale *domain.Sale) *models.SaleModel {
	return &models.SaleModel{
		ID:                  sale.ID,
		OwnerID:             sale.OwnerID,
		Date:                sale.Date,
		CustomerFirstName:   sale.CustomerInfo.FirstName,
		CustomerLastName:    sale.CustomerInfo.LastName,
		CustomerEmail:       sale.CustomerInfo.Email,
		CustomerPhone:       sale.CustomerInfo.Phone,
		VehicleInfo:         sale.VehicleInfo,
		IsFlat:              sale.IsFlat,
		FlatAmount:          sale.FlatAmount,
		FrontEndProfit:      sale.FrontEndProfit,
		BackEndProfit:       sale.BackEndProfit,
		BonusAmount:         sale.BonusAmount,
		AftermarketProducts: sale.AftermarketProducts,
		ReferrerID:          sale.ReferrerID,
		TotalCommission:     sale.TotalCommission,
		CreatedAt:           sale.CreatedAt,
		UpdatedAt:           sale.UpdatedAt,
	}
}
