package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akerkez/coinkeeper/internal/model"
)

// TransactionInput carries the caller-supplied fields for a new
// transaction. Identifier and creation timestamp are assigned by the store.
type TransactionInput struct {
	Type        model.TransactionType `validate:"required,oneof=income expense"`
	Category    string                `validate:"required,notblank"`
	Amount      float64               `validate:"required,gt=0"`
	Date        model.Date            `validate:"required"`
	Description string
	Tags        []string
}

// TransactionPatch enumerates the mutable fields of a transaction for
// partial updates. Nil means "leave unchanged". Identifier, type, and
// creation timestamp are immutable.
type TransactionPatch struct {
	Amount      *float64 `validate:"omitempty,gt=0"`
	Category    *string  `validate:"omitempty,notblank"`
	Date        *model.Date
	Description *string
	Tags        *[]string
}

// ListTransactions returns all persisted transactions, oldest stored
// first. Never fails on corrupt storage; see loadCollection.
func (s *Store) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return loadCollection[model.Transaction](ctx, s, keyTransactions)
}

// CreateTransaction validates input, assigns an identifier and creation
// timestamp, appends, persists, and returns the stored record.
func (s *Store) CreateTransaction(ctx context.Context, input TransactionInput) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.checkCategoryRef(ctx, input.Category, model.CategoryType(input.Type)); err != nil {
		return nil, err
	}

	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	txn := model.Transaction{
		ID:          s.newID(),
		Type:        input.Type,
		Category:    input.Category,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		CreatedAt:   s.now().UTC(),
	}
	for _, tag := range input.Tags {
		txn.AddTag(tag)
	}

	transactions = append(transactions, txn)
	if err := saveCollection(ctx, s, keyTransactions, transactions); err != nil {
		return nil, err
	}

	slog.Info("created transaction",
		"id", txn.ID, "type", txn.Type, "category", txn.Category, "amount", txn.Amount)
	return &txn, nil
}

// UpdateTransaction merges patch fields into the identified transaction,
// stamps the update time, persists, and returns the updated record.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateInput(patch); err != nil {
		return nil, err
	}

	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range transactions {
		if transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, id)
	}

	txn := &transactions[idx]
	if patch.Category != nil {
		if err := s.checkCategoryRef(ctx, *patch.Category, model.CategoryType(txn.Type)); err != nil {
			return nil, err
		}
		txn.Category = *patch.Category
	}
	if patch.Amount != nil {
		txn.Amount = *patch.Amount
	}
	if patch.Date != nil {
		txn.Date = *patch.Date
	}
	if patch.Description != nil {
		txn.Description = *patch.Description
	}
	if patch.Tags != nil {
		txn.Tags = nil
		for _, tag := range *patch.Tags {
			txn.AddTag(tag)
		}
	}
	updatedAt := s.now().UTC()
	txn.UpdatedAt = &updatedAt

	if err := saveCollection(ctx, s, keyTransactions, transactions); err != nil {
		return nil, err
	}

	slog.Info("updated transaction", "id", id)
	updated := *txn
	return &updated, nil
}

// DeleteTransaction removes the identified transaction. Deleting an
// absent identifier is not an error, so repeated deletes are idempotent.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return err
	}

	kept := transactions[:0]
	removed := false
	for _, txn := range transactions {
		if txn.ID == id {
			removed = true
			continue
		}
		kept = append(kept, txn)
	}
	if !removed {
		return nil
	}

	if err := saveCollection(ctx, s, keyTransactions, kept); err != nil {
		return err
	}

	slog.Info("deleted transaction", "id", id)
	return nil
}
