package db

import "database/sql"

// DB wraps the shared *sql.DB so components depend on an injected
// handle instead of a process-wide singleton.
type DB struct {
	*sql.DB
}
