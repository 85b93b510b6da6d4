package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgBadTrustedProxy  = "Ignoring unparseable trusted proxy"

	LogMsgWSUpgradeFailed = "Failed to upgrade WebSocket connection"
	LogMsgWSConnected     = "WebSocket client connected"
	LogMsgWSDisconnected  = "WebSocket client disconnected"
	LogMsgWSWriteFailed   = "Failed to write WebSocket message"
	LogMsgWSUnexpected    = "Unexpected WebSocket close"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths bypass the control API key
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// QuietPaths are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Limits
const (
	MaxRequestBytes   = 1 << 20 // 1MB
	ReadHeaderTimeout = 5 * time.Second

	failedAuthAlertThreshold = 5
	rateLimitPerWindow       = 1000
	rateWindow               = 5 * time.Minute
)

// WebSocket settings
const (
	WSWriteTimeout   = 10 * time.Second
	WSReadTimeout    = 60 * time.Second
	WSPingInterval   = 30 * time.Second
	WSMaxMessageSize = 1024
	WSBufferSize     = 1024
)
