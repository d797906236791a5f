// Package store defines the collection store capability consumed by the
// request handlers and its MongoDB and in-memory implementations.
package store

import "context"

// IdentifierKey is the document key under which the store reports the
// identifier it assigned on insert.
const IdentifierKey = "_id"

// Document is the loosely-typed, store-native representation of a record.
// Values are limited to strings, numbers, booleans, sequences and nil; typing
// is resolved at the mapper boundary, never here.
type Document map[string]interface{}

// Store is the collection store adapter. The core treats it as an opaque
// capability: no transactions, indexing or uniqueness guarantees are assumed.
type Store interface {
	// Insert persists one document in the named collection and returns the
	// identifier the store assigned to it.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// FindAll returns every document in the collection, each including its
	// identifier key. Ordering is store-defined.
	FindAll(ctx context.Context, collection string) ([]Document, error)

	// ListCollectionNames reports existing collections. Diagnostic use only.
	ListCollectionNames(ctx context.Context) ([]string, error)
}
