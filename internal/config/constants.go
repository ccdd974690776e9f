package config

// Environment variable names
const (
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvStockFile        = "STOCK_FILE"
	EnvStrictValidation = "STRICT_VALIDATION"
	EnvEnableConjured   = "ENABLE_CONJURED"
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "gilded-rose"
	DefaultVersion     = "dev"
	DefaultStockFile   = "configs/stock.json"
)
