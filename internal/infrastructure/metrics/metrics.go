package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CRMMetrics aggregates the service's prometheus instruments.
type CRMMetrics struct {
	SalesRecordedTotal      prometheus.CounterVec
	CommissionRecordedTotal prometheus.CounterVec

	CustomersCreatedTotal      prometheus.CounterVec
	DuplicateEmailRewriteTotal prometheus.CounterVec

	ReferralsCreatedTotal   prometheus.CounterVec
	ReferralsConvertedTotal prometheus.CounterVec
	ReferralsLostTotal      prometheus.CounterVec

	ConversionDuration prometheus.HistogramVec

	StoreErrorsTotal prometheus.CounterVec
}

func NewCRMMetrics() *CRMMetrics {
	return &CRMMetrics{
		SalesRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_recorded_total",
				Help: "Total number of recorded sales",
			},
			[]string{"owner_id", "referral"},
		),

		CommissionRecordedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_recorded_total",
				Help: "Total commission amount across recorded sales",
			},
			[]string{"owner_id"},
		),

		CustomersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customers_created_total",
				Help: "Total customers created, by source (manual/conversion)",
			},
			[]string{"owner_id", "source"},
		),

		DuplicateEmailRewriteTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_email_rewrites_total",
				Help: "Customer inserts that hit the duplicate-email suffix rewrite",
			},
			[]string{"owner_id"},
		),

		ReferralsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referrals_created_total",
				Help: "Total referrals logged",
			},
			[]string{"owner_id"},
		),

		ReferralsConvertedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referrals_converted_total",
				Help: "Referrals that entered the converted status",
			},
			[]string{"owner_id"},
		),

		ReferralsLostTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referrals_lost_total",
				Help: "Referrals that entered the lost status",
			},
			[]string{"owner_id"},
		),

		ConversionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "referral_conversion_duration_seconds",
				Help:    "Wall time of the referral conversion transaction",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"owner_id"},
		),

		StoreErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_errors_total",
				Help: "Storage-layer failures by operation",
			},
			[]string{"operation"},
		),
	}
}

func (m *CRMMetrics) RecordSaleRecorded(ownerID string, viaReferral bool, commission float64) {
	referral := "false"
	if viaReferral {
		referral = "true"
	}
	m.SalesRecordedTotal.WithLabelValues(ownerID, referral).Inc()
	m.CommissionRecordedTotal.WithLabelValues(ownerID).Add(commission)
}

func (m *CRMMetrics) RecordCustomerCreated(ownerID, source string) {
	m.CustomersCreatedTotal.WithLabelValues(ownerID, source).Inc()
}

func (m *CRMMetrics) RecordEmailRewrite(ownerID string) {
	m.DuplicateEmailRewriteTotal.WithLabelValues(ownerID).Inc()
}

func (m *CRMMetrics) RecordReferralCreated(ownerID string) {
	m.ReferralsCreatedTotal.WithLabelValues(ownerID).Inc()
}

func (m *CRMMetrics) RecordReferralConverted(ownerID string, durationSeconds float64) {
	m.ReferralsConvertedTotal.WithLabelValues(ownerID).Inc()
	m.ConversionDuration.WithLabelValues(ownerID).Observe(durationSeconds)
}

func (m *CRMMetrics) RecordReferralLost(ownerID string) {
	m.ReferralsLostTotal.WithLabelValues(ownerID).Inc()
}

func (m *CRMMetrics) RecordStoreError(operation string) {
	m.StoreErrorsTotal.WithLabelValues(operation).Inc()
}
