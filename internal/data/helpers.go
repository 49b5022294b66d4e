// File: internal/data/helpers.go
package data

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Every store call runs under its own deadline so a hung connection
// cannot block a request indefinitely.
const queryTimeout = 3 * time.Second

func queryContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, queryTimeout)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// failure (sqlstate 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
