package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

// StockFile is the JSON representation of a shop's items
type StockFile struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Items       []StockEntry `json:"items"`
}

// StockEntry is one item line in a stock file
type StockEntry struct {
	Name          string `json:"name" validate:"required,max=128"`
	Quality       int    `json:"quality"`
	DaysRemaining int    `json:"days_remaining"`
}

// Loader reads stock files and turns them into items
type Loader interface {
	Load(ctx context.Context, path string) (*StockFile, error)
	Validate(stock *StockFile) error
	Build(ctx context.Context, catalog *Catalog, stock *StockFile, strict bool) ([]*Item, error)
}

type stockLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &stockLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-checks and parses a stock file
func (l *stockLoader) Load(ctx context.Context, path string) (*StockFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadStockFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, StockSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	var stock StockFile
	if err := json.Unmarshal(data, &stock); err != nil {
		return nil, fmt.Errorf(ErrMsgParseStockFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgStockLoaded, "path", path, "items", len(stock.Items))
	return &stock, nil
}

// Validate checks the stock file for errors the schema cannot express
func (l *stockLoader) Validate(stock *StockFile) error {
	if stock == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidStock, ErrMsgStockNil)
	}
	if len(stock.Items) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidStock, domain.ErrEmptyStock)
	}

	v := getValidator()
	for i := range stock.Items {
		if err := v.Struct(stock.Items[i]); err != nil {
			return fmt.Errorf(ErrFmtEntryInvalid, domain.ErrInvalidStock, i, formatValidationError(err))
		}
	}
	return nil
}

// Build creates one item per stock entry. In strict mode every entry must pass
// NewChecked; otherwise initial values are taken as given.
func (l *stockLoader) Build(ctx context.Context, catalog *Catalog, stock *StockFile, strict bool) ([]*Item, error) {
	if err := l.Validate(stock); err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(stock.Items))
	for i, entry := range stock.Items {
		if !strict {
			items = append(items, catalog.For(entry.Name, entry.Quality, entry.DaysRemaining))
			continue
		}

		it, err := catalog.NewChecked(entry.Name, entry.Quality, entry.DaysRemaining)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildFailed, i, entry.Name, err)
		}
		items = append(items, it)
	}

	logger.FromContext(ctx).Info(LogMsgStockBuilt, "items", len(items), "strict", strict)
	return items, nil
}
