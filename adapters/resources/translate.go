package resources

import (
	"strings"
	"time"

	"github.com/jsamuelsen/go-asaas/domain"
)

// dateLayouts are tried in order; Asaas mostly sends plain dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseDate returns the zero time for empty or unparseable values.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}

// customerDTO is the Asaas wire shape of a customer.
type customerDTO struct {
	Object               string `json:"object"`
	ID                   string `json:"id"`
	DateCreated          string `json:"dateCreated"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Company              string `json:"company"`
	Phone                string `json:"phone"`
	MobilePhone          string `json:"mobilePhone"`
	Address              string `json:"address"`
	AddressNumber        string `json:"addressNumber"`
	Complement           string `json:"complement"`
	Province             string `json:"province"`
	PostalCode           string `json:"postalCode"`
	CpfCnpj              string `json:"cpfCnpj"`
	PersonType           string `json:"personType"`
	Deleted              bool   `json:"deleted"`
	AdditionalEmails     string `json:"additionalEmails"`
	ExternalReference    string `json:"externalReference"`
	NotificationDisabled bool   `json:"notificationDisabled"`
	Observations         string `json:"observations"`
	City                 string `json:"cityName"`
	State                string `json:"state"`
	Country              string `json:"country"`
	GroupName            string `json:"groupName"`
}

func translateCustomer(d *customerDTO) *domain.Customer {
	return &domain.Customer{
		ID:                   d.ID,
		DateCreated:          parseDate(d.DateCreated),
		Name:                 d.Name,
		Email:                d.Email,
		Company:              d.Company,
		Phone:                d.Phone,
		MobilePhone:          d.MobilePhone,
		CpfCnpj:              d.CpfCnpj,
		PersonType:           domain.PersonType(d.PersonType),
		Address:              d.Address,
		AddressNumber:        d.AddressNumber,
		Complement:           d.Complement,
		Province:             d.Province,
		PostalCode:           d.PostalCode,
		City:                 d.City,
		State:                d.State,
		Country:              d.Country,
		AdditionalEmails:     d.AdditionalEmails,
		ExternalReference:    d.ExternalReference,
		NotificationDisabled: d.NotificationDisabled,
		Observations:         d.Observations,
		GroupName:            d.GroupName,
		Deleted:              d.Deleted,
	}
}

// creditCardTokenDTO appears both inside payments and as the tokenize response.
type creditCardTokenDTO struct {
	CreditCardNumber string `json:"creditCardNumber"`
	CreditCardBrand  string `json:"creditCardBrand"`
	CreditCardToken  string `json:"creditCardToken"`
}

func translateCreditCardToken(d *creditCardTokenDTO) *domain.CreditCardToken {
	return &domain.CreditCardToken{
		Number: d.CreditCardNumber,
		Brand:  d.CreditCardBrand,
		Token:  d.CreditCardToken,
	}
}

// paymentDTO is the Asaas wire shape of a payment.
type paymentDTO struct {
	Object            string              `json:"object"`
	ID                string              `json:"id"`
	DateCreated       string              `json:"dateCreated"`
	Customer          string              `json:"customer"`
	Subscription      string              `json:"subscription"`
	Installment       string              `json:"installment"`
	BillingType       string              `json:"billingType"`
	Value             float64             `json:"value"`
	NetValue          float64             `json:"netValue"`
	OriginalValue     float64             `json:"originalValue"`
	InterestValue     float64             `json:"interestValue"`
	Description       string              `json:"description"`
	Status            string              `json:"status"`
	DueDate           string              `json:"dueDate"`
	OriginalDueDate   string              `json:"originalDueDate"`
	PaymentDate       string              `json:"paymentDate"`
	ClientPaymentDate string              `json:"clientPaymentDate"`
	InstallmentNumber int                 `json:"installmentNumber"`
	InvoiceURL        string              `json:"invoiceUrl"`
	BankSlipURL       string              `json:"bankSlipUrl"`
	InvoiceNumber     string              `json:"invoiceNumber"`
	ExternalReference string              `json:"externalReference"`
	Deleted           bool                `json:"deleted"`
	CreditCard        *creditCardTokenDTO `json:"creditCard"`
}

func translatePayment(d *paymentDTO) *domain.Payment {
	p := &domain.Payment{
		ID:                d.ID,
		DateCreated:       parseDate(d.DateCreated),
		Customer:          d.Customer,
		Subscription:      d.Subscription,
		Installment:       d.Installment,
		BillingType:       domain.BillingType(d.BillingType),
		Status:            domain.PaymentStatus(d.Status),
		Value:             d.Value,
		NetValue:          d.NetValue,
		OriginalValue:     d.OriginalValue,
		InterestValue:     d.InterestValue,
		Description:       d.Description,
		DueDate:           parseDate(d.DueDate),
		OriginalDueDate:   parseDate(d.OriginalDueDate),
		PaymentDate:       parseDate(d.PaymentDate),
		ClientPaymentDate: parseDate(d.ClientPaymentDate),
		InstallmentNumber: d.InstallmentNumber,
		InvoiceURL:        d.InvoiceURL,
		BankSlipURL:       d.BankSlipURL,
		InvoiceNumber:     d.InvoiceNumber,
		ExternalReference: d.ExternalReference,
		Deleted:           d.Deleted,
	}

	if d.CreditCard != nil {
		p.CreditCard = translateCreditCardToken(d.CreditCard)
	}

	return p
}

// creditCardDTO is the outbound card payload.
type creditCardDTO struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
}

func toCreditCardDTO(c *domain.CreditCard) *creditCardDTO {
	return &creditCardDTO{
		HolderName:  c.HolderName,
		Number:      c.Number,
		ExpiryMonth: c.ExpiryMonth,
		ExpiryYear:  c.ExpiryYear,
		CCV:         c.CCV,
	}
}

// holderInfoDTO is the outbound card holder payload.
type holderInfoDTO struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	CpfCnpj           string `json:"cpfCnpj"`
	PostalCode        string `json:"postalCode"`
	AddressNumber     string `json:"addressNumber"`
	AddressComplement string `json:"addressComplement,omitempty"`
	Phone             string `json:"phone"`
	MobilePhone       string `json:"mobilePhone,omitempty"`
}

func toHolderInfoDTO(h *domain.CreditCardHolderInfo) *holderInfoDTO {
	return &holderInfoDTO{
		Name:              h.Name,
		Email:             h.Email,
		CpfCnpj:           h.CpfCnpj,
		PostalCode:        h.PostalCode,
		AddressNumber:     h.AddressNumber,
		AddressComplement: h.AddressComplement,
		Phone:             h.Phone,
		MobilePhone:       h.MobilePhone,
	}
}
