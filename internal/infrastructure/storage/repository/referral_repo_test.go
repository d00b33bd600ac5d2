package repository

import (
	"testing"
	"time"

	"github.com/driveline/autosales-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralRepository_GetAllReferralsDateAscending(t *testing.T) {
	repo := NewDefaultReferralRepository(setupTestDB(t))

	for i, d := range []int{25, 2, 14} {
		referral := newReferral([]string{"r-a", "r-b", "r-c"}[i], "ref-1", domain.ReferralStatusPending)
		referral.Date = day(d)
		require.NoError(t, repo.CreateReferral(referral))
	}

	referrals, err := repo.GetAllReferrals(testOwner)
	require.NoError(t, err)
	require.Len(t, referrals, 3)
	assert.Equal(t, "r-b", referrals[0].ID)
	assert.Equal(t, "r-c", referrals[1].ID)
	assert.Equal(t, "r-a", referrals[2].ID)
}

func TestReferralRepository_GetReferralsByStatus(t *testing.T) {
	repo := NewDefaultReferralRepository(setupTestDB(t))

	require.NoError(t, repo.CreateReferral(newReferral("r-1", "ref-1", domain.ReferralStatusPending)))
	require.NoError(t, repo.CreateReferral(newReferral("r-2", "ref-1", domain.ReferralStatusContacted)))
	require.NoError(t, repo.CreateReferral(newReferral("r-3", "ref-2", domain.ReferralStatusPending)))

	pending, err := repo.GetReferralsByStatus(testOwner, domain.ReferralStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	contacted, err := repo.GetReferralsByStatus(testOwner, domain.ReferralStatusContacted)
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	assert.Equal(t, "r-2", contacted[0].ID)
}

func TestReferralRepository_GetReferralsByReferrer(t *testing.T) {
	repo := NewDefaultReferralRepository(setupTestDB(t))

	require.NoError(t, repo.CreateReferral(newReferral("r-1", "ref-1", domain.ReferralStatusPending)))
	require.NoError(t, repo.CreateReferral(newReferral("r-2", "ref-2", domain.ReferralStatusPending)))

	referrals, err := repo.GetReferralsByReferrer(testOwner, "ref-2")
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.Equal(t, "r-2", referrals[0].ID)
}

func TestReferralRepository_UpdateReferral(t *testing.T) {
	repo := NewDefaultReferralRepository(setupTestDB(t))

	referral := newReferral("r-1", "ref-1", domain.ReferralStatusPending)
	require.NoError(t, repo.CreateReferral(referral))

	referral.Status = domain.ReferralStatusContacted
	referral.Notes = "left a voicemail"
	referral.SaleValue = 2500
	referral.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.UpdateReferral(referral))

	stored, err := repo.GetReferralByID(testOwner, "r-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.ReferralStatusContacted, stored.Status)
	assert.Equal(t, "left a voicemail", stored.Notes)
	assert.Equal(t, 2500.0, stored.SaleValue)
}

func TestReferralRepository_UpdateMissingReferralIsNoop(t *testing.T) {
	repo := NewDefaultReferralRepository(setupTestDB(t))

	ghost := newReferral("ghost", "ref-1", domain.ReferralStatusContacted)
	require.NoError(t, repo.UpdateReferral(ghost))

	stored, err := repo.GetReferralByID(testOwner, "ghost")
	require.NoError(t, err)
	assert.Nil(t, stored)
}
