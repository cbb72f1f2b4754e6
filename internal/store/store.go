// Package store holds the product and order repositories. All operations go
// through the shared *sql.DB pool; anything that performs more than one
// write runs inside a single transaction.
package store

import "database/sql"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
