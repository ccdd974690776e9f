package item

// ==================== Configuration File Names ====================

const (
	// StockSchemaPath is the JSON schema every stock file must satisfy
	StockSchemaPath = "configs/schemas/stock.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadStockFileFailed = "failed to read stock file: %w"
	ErrMsgParseStockFailed    = "failed to parse stock file: %w"
	ErrMsgSchemaFailed        = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgStockNil = "stock file is nil"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtFieldRequired = "%s is required"
	ErrFmtFieldTooLong  = "%s must be at most %s characters"
	ErrFmtFieldBelowMin = "%s must be at least %s"
	ErrFmtFieldAboveMax = "%s must be at most %s"
	ErrFmtFieldInvalid  = "%s is invalid"

	ErrFmtEntryInvalid = "%w: item at index %d: %s"
	ErrFmtBuildFailed  = "item at index %d (%q): %w"
)

// ==================== Log Messages ====================

const (
	LogMsgStockLoaded = "Stock file loaded"
	LogMsgStockBuilt  = "Stock items built"
)
