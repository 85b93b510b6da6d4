package api

import "time"

// Backend endpoints, relative to the configured base URL
const (
	PathGoogleLogin        = "/auth/google"
	PathProfile            = "/auth/profile"
	PathGameState          = "/game/state"
	PathPlantTree          = "/game/plant"
	PathClickTree          = "/game/click"
	PathSellTree           = "/game/sell"
	PathSeeds              = "/seeds"
	PathLocations          = "/locations"
	PathAdStatus           = "/ads/status"
	PathAdReward           = "/ads/reward"
	PathUser               = "/users/me"
)

// Client defaults
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	jitterFraction    = 5 // jitter is at most RetryDelay/jitterFraction
)

// Log messages
const (
	LogMsgRetrying      = "Retrying API request"
	LogMsgRequestFailed = "API request failed"
	LogMsgServerError   = "Server error, will retry"
)
