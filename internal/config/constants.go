package config

import "time"

// Defaults applied when a variable is unset
const (
	DefaultPort             = 8080
	DefaultServiceName      = "idle-garden"
	DefaultAPIBaseURL       = "https://idle-garden-be-production.up.railway.app/api"
	DefaultAPITimeout       = 10 * time.Second
	DefaultAPIMaxRetries    = 3
	DefaultStorePath        = "data/session.yaml"
	DefaultCatalogCacheTTL  = 10 * time.Minute
	DefaultCatalogCacheSize = 256
	DefaultComboFlushDelay  = 5 * time.Second
	DefaultDisplayTick      = time.Second
)
