package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-asaas/domain"
)

func TestCreditCardResource_Tokenize(t *testing.T) {
	cfg, adapter := testConfig(t)
	card := &domain.CreditCard{HolderName: "Ana", Number: "4444444444444444", ExpiryMonth: "10", ExpiryYear: "2027", CCV: "123"}
	holder := &domain.CreditCardHolderInfo{Name: "Ana", Email: "ana@x.com", CpfCnpj: "24971563792", PostalCode: "01310-000", AddressNumber: "1", Phone: "1133334444"}

	adapter.EXPECT().Post(mock.Anything, testEndpoint+"/creditCard/tokenize", &tokenizeRequest{
		Customer:             "cus_1",
		CreditCard:           toCreditCardDTO(card),
		CreditCardHolderInfo: toHolderInfoDTO(holder),
		RemoteIP:             "203.0.113.7",
	}).Return([]byte(`{"creditCardNumber":"4444","creditCardBrand":"VISA","creditCardToken":"76496073-536f-4835-80db-c45d00f33695"}`), nil).Once()

	tok, err := NewCreditCardResource(cfg).Tokenize(context.Background(), "cus_1", card, holder, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, &domain.CreditCardToken{
		Number: "4444",
		Brand:  "VISA",
		Token:  "76496073-536f-4835-80db-c45d00f33695",
	}, tok)
}

func TestCreditCardResource_Tokenize_Validation(t *testing.T) {
	cfg, _ := testConfig(t)
	r := NewCreditCardResource(cfg)
	card := &domain.CreditCard{}
	holder := &domain.CreditCardHolderInfo{}

	tests := []struct {
		name     string
		customer string
		card     *domain.CreditCard
		holder   *domain.CreditCardHolderInfo
		ip       string
	}{
		{name: "customer", customer: "", card: card, holder: holder, ip: "1.1.1.1"},
		{name: "card", customer: "cus_1", card: nil, holder: holder, ip: "1.1.1.1"},
		{name: "holder", customer: "cus_1", card: card, holder: nil, ip: "1.1.1.1"},
		{name: "remote ip", customer: "cus_1", card: card, holder: holder, ip: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Tokenize(context.Background(), tt.customer, tt.card, tt.holder, tt.ip)
			assert.True(t, domain.IsInvalidArgument(err))
		})
	}
}
