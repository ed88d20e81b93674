// Package repository implements the inventory store on Postgres. It is
// the only component that talks to the database; every invariant the
// domain declares for inventory counters is enforced here with guarded
// updates and backed by CHECK constraints in the schema.
package repository

import (
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type Store struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStore(db *dbpg.DB) *Store {
	return &Store{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}
