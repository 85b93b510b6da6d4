package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "idle-garden"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Session log files
const (
	logFilePrefix    = "session_"
	logFileExt       = ".log"
	logFileTimestamp = "2006-01-02_15-04-05"
	keepLogFiles     = 9
)
