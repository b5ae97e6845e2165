package resources

import (
	"context"

	"github.com/jsamuelsen/go-asaas/domain"
)

const creditCardResource = "creditCard"

// CreditCardResource is the client for /creditCard.
type CreditCardResource struct {
	base
}

// NewCreditCardResource creates a credit card resource.
func NewCreditCardResource(cfg Config) *CreditCardResource {
	return &CreditCardResource{base: newBase(cfg, creditCardResource)}
}

type tokenizeRequest struct {
	Customer             string         `json:"customer"`
	CreditCard           *creditCardDTO `json:"creditCard"`
	CreditCardHolderInfo *holderInfoDTO `json:"creditCardHolderInfo"`
	RemoteIP             string         `json:"remoteIp"`
}

// Tokenize stores card for customerID and returns the token to charge it
// later without resending the card number. remoteIP is the buyer's address.
func (r *CreditCardResource) Tokenize(
	ctx context.Context,
	customerID string,
	card *domain.CreditCard,
	holder *domain.CreditCardHolderInfo,
	remoteIP string,
) (*domain.CreditCardToken, error) {
	const op = "tokenize"

	if err := r.requireID(op, "customerID", customerID); err != nil {
		return nil, err
	}
	if card == nil {
		return nil, r.reject(op, domain.NewInvalidArgumentError("card", "is required"))
	}
	if holder == nil {
		return nil, r.reject(op, domain.NewInvalidArgumentError("holder", "is required"))
	}
	if remoteIP == "" {
		return nil, r.reject(op, domain.NewInvalidArgumentError("remoteIP", "is required"))
	}

	body := &tokenizeRequest{
		Customer:             customerID,
		CreditCard:           toCreditCardDTO(card),
		CreditCardHolderInfo: toHolderInfoDTO(holder),
		RemoteIP:             remoteIP,
	}

	return invoke(ctx, &r.base, op, "",
		func(ctx context.Context) ([]byte, error) { return r.adapter.Post(ctx, r.url("tokenize"), body) },
		decodeOne(translateCreditCardToken),
	)
}
