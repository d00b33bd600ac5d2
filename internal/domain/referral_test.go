package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralStatusValid(t *testing.T) {
	assert.True(t, ReferralStatusPending.Valid())
	assert.True(t, ReferralStatusContacted.Valid())
	assert.True(t, ReferralStatusConverted.Valid())
	assert.True(t, ReferralStatusLost.Valid())
	assert.False(t, ReferralStatus("archived").Valid())
	assert.False(t, ReferralStatus("").Valid())
}

func TestReferralStatusTransitions(t *testing.T) {
	allowed := map[ReferralStatus][]ReferralStatus{
		ReferralStatusPending:   {ReferralStatusContacted, ReferralStatusConverted, ReferralStatusLost},
		ReferralStatusContacted: {ReferralStatusPending, ReferralStatusConverted, ReferralStatusLost},
		ReferralStatusConverted: {},
		ReferralStatusLost:      {},
	}

	statuses := []ReferralStatus{
		ReferralStatusPending, ReferralStatusContacted, ReferralStatusConverted, ReferralStatusLost,
	}
	for from, targets := range allowed {
		allowedSet := make(map[ReferralStatus]bool, len(targets))
		for _, target := range targets {
			allowedSet[target] = true
		}
		for _, to := range statuses {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}
