package domain

// ComputeTotalCommission derives a sale's total commission from its raw
// inputs. Flat sales pay the flat amount, split sales pay front-end plus
// back-end profit; both modes add the bonus and every aftermarket line
// item's commission. Missing optional amounts count as zero and negative
// inputs pass through untouched: validation happens at the edge, not here.
func ComputeTotalCommission(sale *Sale) float64 {
	var total float64
	if sale.IsFlat {
		total = sale.FlatAmount
	} else {
		total = sale.FrontEndProfit + sale.BackEndProfit
	}
	total += sale.BonusAmount
	for _, product := range sale.AftermarketProducts {
		total += product.Commission
	}
	return total
}
