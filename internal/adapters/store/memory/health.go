package memory

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "record-store"
}

// HealthCheck always succeeds unless ctx is done. The store has no
// external dependency that could fail.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
