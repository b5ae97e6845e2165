package resources

import (
	"context"

	"github.com/jsamuelsen/go-asaas/domain"
)

const paymentsResource = "payments"

// PaymentResource is the client for /payments.
type PaymentResource struct {
	base
}

// NewPaymentResource creates a payment resource.
func NewPaymentResource(cfg Config) *PaymentResource {
	return &PaymentResource{base: newBase(cfg, paymentsResource)}
}

// GetByID fetches one payment.
func (r *PaymentResource) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if err := r.requireID("get", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "get", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Get(ctx, r.url(id)) },
		decodeOne(translatePayment),
	)
}

// GetAll lists payments matching filters, in server order.
func (r *PaymentResource) GetAll(ctx context.Context, filters domain.Filters) (*domain.Page[domain.Payment], error) {
	return invoke(ctx, &r.base, "list", "",
		func(ctx context.Context) ([]byte, error) { return r.adapter.Get(ctx, r.listURL(filters)) },
		decodeList(translatePayment),
	)
}

// Create issues a new payment.
func (r *PaymentResource) Create(ctx context.Context, params domain.Params) (*domain.Payment, error) {
	return invoke(ctx, &r.base, "create", "",
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(), orEmpty(params)) },
		decodeOne(translatePayment),
	)
}

// Update changes a payment (POST).
func (r *PaymentResource) Update(ctx context.Context, id string, params domain.Params) (*domain.Payment, error) {
	if err := r.requireID("update", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "update", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(id), orEmpty(params)) },
		decodeOne(translatePayment),
	)
}

// Delete removes a payment.
func (r *PaymentResource) Delete(ctx context.Context, id string) error {
	if err := r.requireID("delete", "id", id); err != nil {
		return err
	}

	_, err := invoke(ctx, &r.base, "delete", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Delete(ctx, r.url(id)) },
		decodeDeleted,
	)

	return err
}

// Refund refunds a received payment. params may carry "value" for a partial
// refund and "description"; nil refunds the full amount.
func (r *PaymentResource) Refund(ctx context.Context, id string, params domain.Params) (*domain.Payment, error) {
	if err := r.requireID("refund", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "refund", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(id, "refund"), orEmpty(params)) },
		decodeOne(translatePayment),
	)
}

// Restore undeletes a payment.
func (r *PaymentResource) Restore(ctx context.Context, id string) (*domain.Payment, error) {
	if err := r.requireID("restore", "id", id); err != nil {
		return nil, err
	}

	return invoke(ctx, &r.base, "restore", id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(id, "restore"), nil) },
		decodeOne(translatePayment),
	)
}

// payWithCreditCardRequest is the body of POST /payments/{id}/payWithCreditCard.
type payWithCreditCardRequest struct {
	CreditCard           *creditCardDTO `json:"creditCard"`
	CreditCardHolderInfo *holderInfoDTO `json:"creditCardHolderInfo"`
}

// PayWithCreditCard charges a pending payment to card.
func (r *PaymentResource) PayWithCreditCard(
	ctx context.Context,
	id string,
	card *domain.CreditCard,
	holder *domain.CreditCardHolderInfo,
) (*domain.Payment, error) {
	const op = "pay_with_credit_card"

	if err := r.requireID(op, "id", id); err != nil {
		return nil, err
	}
	if card == nil {
		return nil, r.reject(op, domain.NewInvalidArgumentError("card", "is required"))
	}
	if holder == nil {
		return nil, r.reject(op, domain.NewInvalidArgumentError("holder", "is required"))
	}

	body := &payWithCreditCardRequest{
		CreditCard:           toCreditCardDTO(card),
		CreditCardHolderInfo: toHolderInfoDTO(holder),
	}

	return invoke(ctx, &r.base, op, id,
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url(id, "payWithCreditCard"), body) },
		decodeOne(translatePayment),
	)
}
