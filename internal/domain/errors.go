package domain

import "errors"

var (
	// ErrStoreUnavailable means the backing store could not be opened.
	// Fatal to every core operation; never swallowed.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrRecordNotFound signals an explicit lookup miss where callers asked
	// for an error rather than an empty result.
	ErrRecordNotFound = errors.New("record not found")
	// ErrTransactionFailed wraps any failure inside a multi-collection unit.
	// The whole unit has been rolled back; the caller may retry it.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrReferrerNotFound: a sale or conversion named a referrer that does
	// not exist; accepting it would leave a dangling reference.
	ErrReferrerNotFound = errors.New("referrer not found")
	// ErrInvalidStatusTransition: the referral state machine forbids the
	// requested move (e.g. out of a terminal status).
	ErrInvalidStatusTransition = errors.New("invalid referral status transition")
)
