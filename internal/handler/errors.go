package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Readiness
	ErrMsgNotSignedIn = "not signed in"
)

// Success messages for API responses
const (
	MsgTreePlanted     = "Tree planted!"
	MsgTreeSoldFormat  = "%s sold for %sg!"
	MsgAdRewardClaimed = "Reward claimed"
)

// Operation names used in logs
const (
	OpState       = "State"
	OpTap         = "Tap"
	OpPlant       = "Plant"
	OpSell        = "Sell"
	OpRefresh     = "Refresh"
	OpSeeds       = "Seeds"
	OpLocations   = "Locations"
	OpAdStatus    = "Ad status"
	OpClaimReward = "Claim ad reward"
)
