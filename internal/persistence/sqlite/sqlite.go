// Package sqlite implements the persistence repositories on top of a SQLite
// database using the modernc.org/sqlite driver.
package sqlite

// Store bundles the SQLite-backed repositories behind one connection pool.
type Store struct {
	pool        *ConnectionPool
	Assignments *AssignmentRepository
	Catalog     *CatalogRepository
}

// Open connects to the SQLite database identified by the DSN.
func Open(dsn string) (*Store, error) {
	pool, err := NewConnectionPool(dsn)
	if err != nil {
		return nil, err
	}

	return &Store{
		pool:        pool,
		Assignments: NewAssignmentRepository(pool),
		Catalog:     NewCatalogRepository(pool),
	}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.pool.Close()
}
