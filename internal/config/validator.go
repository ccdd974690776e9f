package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that ENV_SCHEMA_VERSION, when set, matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like relying on default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv(EnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected: %s)", ExpectedEnvSchemaVersion))
	}
	if os.Getenv(EnvStockFile) == "" {
		warnings = append(warnings, fmt.Sprintf("STOCK_FILE is not set, using %s", DefaultStockFile))
	}
	return warnings, nil
}
