package domain

// CreditCard holds the card data sent when charging or tokenizing.
type CreditCard struct {
	HolderName  string
	Number      string
	ExpiryMonth string // two digits
	ExpiryYear  string // four digits
	CCV         string
}

// CreditCardHolderInfo identifies the card holder for anti-fraud checks.
type CreditCardHolderInfo struct {
	Name              string
	Email             string
	CpfCnpj           string
	PostalCode        string
	AddressNumber     string
	AddressComplement string
	Phone             string
	MobilePhone       string
}

// CreditCardToken is what Asaas returns instead of the card number.
type CreditCardToken struct {
	Number string // last four digits
	Brand  string
	Token  string
}
