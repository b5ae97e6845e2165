package resources

import (
	"context"
	"strings"

	"github.com/jsamuelsen/go-asaas/domain"
)

const customersResource = "customers"

// CustomerResource is the client for /customers.
type CustomerResource struct {
	base
	payments *PaymentResource
}

// NewCustomerResource creates a customer resource. Payments listed for a
// customer go through payments; when nil a PaymentResource is built from cfg.
func NewCustomerResource(cfg Config, payments *PaymentResource) *CustomerResource {
	if payments == nil {
		payments = NewPaymentResource(cfg)
	}

	return &CustomerResource{
		base:     newBase(cfg, customersResource),
		payments: payments,
	}
}

// GetByID fetches one customer. A missing customer yields *domain.NotFoundError.
func (r *CustomerResource) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if err := r.requireID("get", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "get", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Get(ctx, r.url(id)) },
		decodeOne(translateCustomer),
	)
}

// GetAll lists customers matching filters, in server order.
func (r *CustomerResource) GetAll(ctx context.Context, filters domain.Filters) (*domain.Page[domain.Customer], error) {
	return invoke(ctx, &r.base, "list", "",
		func(ctx context.Context) ([]byte, error) { return r.adapter.Get(ctx, r.listURL(filters)) },
		decodeList(translateCustomer),
	)
}

// GetByEmail returns the first customer whose email equals email, or nil
// when none does. A missing match is not an error.
//
// Asaas has no lookup-by-email endpoint, so this lists customers filtered by
// the "email" query parameter and scans the first page. Earlier clients
// filtered by "name" here, which only matched customers named after their
// own address.
func (r *CustomerResource) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, r.reject("get_by_email", domain.NewInvalidArgumentError("email", "is required"))
	}

	page, err := r.GetAll(ctx, domain.NewFilters("email", email))
	if err != nil {
		return nil, err
	}

	for i := range page.Items {
		if page.Items[i].Email == email {
			c := page.Items[i]
			return &c, nil
		}
	}

	return nil, nil //nolint:nilnil // absent customer is a valid result
}

// Create registers a new customer.
func (r *CustomerResource) Create(ctx context.Context, params domain.Params) (*domain.Customer, error) {
	return invoke(ctx, &r.base, "create", "",
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(), orEmpty(params)) },
		decodeOne(translateCustomer),
	)
}

// Update changes an existing customer. Asaas uses POST, not PUT, for updates.
func (r *CustomerResource) Update(ctx context.Context, id string, params domain.Params) (*domain.Customer, error) {
	if err := r.requireID("update", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "update", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(id), orEmpty(params)) },
		decodeOne(translateCustomer),
	)
}

// Delete removes a customer.
func (r *CustomerResource) Delete(ctx context.Context, id string) error {
	if err := r.requireID("delete", "id", id); err != nil {
		return err
	}

	_, err := invoke(ctx, &r.base, "delete", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Delete(ctx, r.url(id)) },
		decodeDeleted,
	)

	return err
}

// Restore undeletes a customer.
func (r *CustomerResource) Restore(ctx context.Context, id string) (*domain.Customer, error) {
	if err := r.requireID("restore", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "restore", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(id, "restore"), nil) },
		decodeOne(translateCustomer),
	)
}

// Payments lists the payments of a customer. The customer key always comes
// from customerID; a "customer" entry in filters is ignored.
func (r *CustomerResource) Payments(ctx context.Context, customerID string, filters domain.Filters) (*domain.Page[domain.Payment], error) {
	if err := r.requireID("payments", "customerID", customerID); err != nil {
		return nil, err
	}

	return r.payments.GetAll(ctx, domain.NewFilters("customer", customerID).Merge(filters))
}

// GetPaymentsInDebt lists the customer's payments whose status is one of
// domain.InDebtStatuses.
func (r *CustomerResource) GetPaymentsInDebt(ctx context.Context, customerID string) (*domain.Page[domain.Payment], error) {
	return r.Payments(ctx, customerID, domain.NewFilters("status", domain.InDebtFilterValue()))
}

// InDebt reports whether the customer has at least one payment in debt.
func (r *CustomerResource) InDebt(ctx context.Context, customerID string) (bool, error) {
	page, err := r.GetPaymentsInDebt(ctx, customerID)
	if err != nil {
		return false, err
	}

	return !page.Empty(), nil
}
