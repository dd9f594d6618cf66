// Package storage provides the data persistence layer for coinkeeper.
//
// All application state lives in a handful of independently keyed JSON
// collections. The Backend interface abstracts the key/value medium those
// collections are written to, so the Store can run against SQLite on disk
// or a plain map in tests.
package storage

import "context"

// Storage keys for the persisted collections.
const (
	keyTransactions = "coinkeeper_transactions"
	keyBudgets      = "coinkeeper_budgets"
	keyCategories   = "coinkeeper_categories"
	keySettings     = "coinkeeper_settings"
	keySession      = "coinkeeper_session"
)

// Backend is a minimal key/value persistence contract: get, set, and
// remove over named keys.
type Backend interface {
	// Get returns the value stored under key, and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key if present. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the backend.
	Close() error
}
