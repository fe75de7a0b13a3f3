// Package postgres implements the dev backend store over Postgres. Reads
// go through the shared retry strategy; uniqueness violations are mapped
// to the matching domain sentinel.
package postgres

import (
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type Store struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func New(db *dbpg.DB) *Store {
	return &Store{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const uniqueViolation = "23505"
