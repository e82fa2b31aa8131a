package catalog

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the venue catalog.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
