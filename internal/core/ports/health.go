package ports

import "context"

// HealthChecker reports whether a downstream dependency answers.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
