package ports

import "context"

// HealthChecker is implemented by components that can report their health.
//
// Example implementation:
//
//	func (c *Client) Name() string { return "asaas-sandbox" }
//
//	func (c *Client) Check(ctx context.Context) error {
//	    _, err := c.Customer().GetAll(ctx, domain.Filters{}.WithPage(0, 1))
//	    return err
//	}
type HealthChecker interface {
	// Name returns a unique identifier for this health check.
	Name() string

	// Check performs the health check and returns an error if unhealthy.
	// Implementations should respect context cancellation and deadlines.
	Check(ctx context.Context) error
}
