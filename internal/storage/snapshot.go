package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/akerkez/coinkeeper/internal/model"
)

// Snapshot is the import/export document: all three collections plus the
// export timestamp, as one JSON object. Pointer slices distinguish "key
// absent" from "key present and empty" so imports can merge partially.
type Snapshot struct {
	Transactions *[]model.Transaction `json:"transactions,omitempty"`
	Budgets      *[]model.Budget      `json:"budgets,omitempty"`
	Categories   *[]model.Category    `json:"categories,omitempty"`
	ExportedAt   time.Time            `json:"exportedAt"`
}

// ExportSnapshot serializes all three collections as one document.
func (s *Store) ExportSnapshot(ctx context.Context) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []model.Transaction{}
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}
	if categories == nil {
		categories = []model.Category{}
	}

	doc := Snapshot{
		Transactions: &transactions,
		Budgets:      &budgets,
		Categories:   &categories,
		ExportedAt:   s.now().UTC(),
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	slog.Info("exported snapshot",
		"transactions", len(transactions),
		"budgets", len(budgets),
		"categories", len(categories))
	return raw, nil
}

// ImportSnapshot replaces each stored collection wholesale, but only for
// keys present in the document; absent keys leave the corresponding
// collection untouched. Malformed input fails with ErrParse before any
// stored state is modified.
func (s *Store) ImportSnapshot(ctx context.Context, blob []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var doc Snapshot
	if err := json.Unmarshal(blob, &doc); err != nil {
		return fmt.Errorf("%w: malformed snapshot: %v", ErrParse, err)
	}
	if doc.Transactions == nil && doc.Budgets == nil && doc.Categories == nil {
		return fmt.Errorf("%w: snapshot contains no known collections", ErrParse)
	}

	if doc.Transactions != nil {
		if err := saveCollection(ctx, s, keyTransactions, *doc.Transactions); err != nil {
			return err
		}
	}
	if doc.Budgets != nil {
		if err := saveCollection(ctx, s, keyBudgets, *doc.Budgets); err != nil {
			return err
		}
	}
	if doc.Categories != nil {
		if err := saveCollection(ctx, s, keyCategories, *doc.Categories); err != nil {
			return err
		}
	}

	slog.Info("imported snapshot",
		"transactions", doc.Transactions != nil,
		"budgets", doc.Budgets != nil,
		"categories", doc.Categories != nil)
	return nil
}
