package domain

// Snapshot is a full copy of one owner's collections, produced and consumed
// as a single atomic unit.
type Snapshot struct {
	Sales     []*Sale     `json:"sales"`
	Customers []*Customer `json:"customers"`
	Referrers []*Referrer `json:"referrers"`
	Referrals []*Referral `json:"referrals"`
}

type ConversionResult struct {
	// Converted is false when the referral was already gone or already
	// terminal, i.e. the call was a retried request and nothing changed.
	Converted  bool
	CustomerID string
}

// TxCoordinator sequences every multi-collection write so that either all
// sub-steps commit or none are visible. No caller-visible read may observe a
// referrer whose counters reflect an uncommitted sale, or vice versa.
type TxCoordinator interface {
	// CreateSaleWithAttribution inserts the sale and, when it names a
	// referrer, folds the sale into that referrer's derived counters in the
	// same unit. A dangling referrer reference fails the whole unit.
	CreateSaleWithAttribution(sale *Sale) error
	// ConvertReferral runs the conversion protocol: synthesize a customer
	// from the referral's contact fields, bump the referrer's counters,
	// delete the referral. Idempotent under retry.
	ConvertReferral(ownerID, referralID string, saleValue float64) (*ConversionResult, error)
	ExportAll(ownerID string) (*Snapshot, error)
	ImportAll(ownerID string, snapshot *Snapshot) error
}
