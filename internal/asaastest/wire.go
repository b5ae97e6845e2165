package asaastest

// Customer is a customer as the fake serves it.
type Customer struct {
	Object               string `json:"object"`
	ID                   string `json:"id"`
	DateCreated          string `json:"dateCreated"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Company              string `json:"company,omitempty"`
	Phone                string `json:"phone,omitempty"`
	MobilePhone          string `json:"mobilePhone,omitempty"`
	Address              string `json:"address,omitempty"`
	AddressNumber        string `json:"addressNumber,omitempty"`
	Complement           string `json:"complement,omitempty"`
	Province             string `json:"province,omitempty"`
	PostalCode           string `json:"postalCode,omitempty"`
	CpfCnpj              string `json:"cpfCnpj"`
	PersonType           string `json:"personType"`
	Deleted              bool   `json:"deleted"`
	AdditionalEmails     string `json:"additionalEmails,omitempty"`
	ExternalReference    string `json:"externalReference,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled"`
	Observations         string `json:"observations,omitempty"`
	CityName             string `json:"cityName,omitempty"`
	State                string `json:"state,omitempty"`
	Country              string `json:"country"`
	GroupName            string `json:"groupName,omitempty"`
}

// CreditCardToken is the tokenized card shape.
type CreditCardToken struct {
	CreditCardNumber string `json:"creditCardNumber"`
	CreditCardBrand  string `json:"creditCardBrand"`
	CreditCardToken  string `json:"creditCardToken"`
}

// Payment is a payment as the fake serves it.
type Payment struct {
	Object            string           `json:"object"`
	ID                string           `json:"id"`
	DateCreated       string           `json:"dateCreated"`
	Customer          string           `json:"customer"`
	BillingType       string           `json:"billingType"`
	Value             float64          `json:"value"`
	NetValue          float64          `json:"netValue"`
	Description       string           `json:"description,omitempty"`
	Status            string           `json:"status"`
	DueDate           string           `json:"dueDate"`
	OriginalDueDate   string           `json:"originalDueDate"`
	PaymentDate       *string          `json:"paymentDate"`
	ClientPaymentDate *string          `json:"clientPaymentDate"`
	InvoiceURL        string           `json:"invoiceUrl"`
	ExternalReference string           `json:"externalReference,omitempty"`
	Deleted           bool             `json:"deleted"`
	CreditCard        *CreditCardToken `json:"creditCard,omitempty"`
}

// listResponse is the Asaas list envelope.
type listResponse[T any] struct {
	Object     string `json:"object"`
	HasMore    bool   `json:"hasMore"`
	TotalCount int    `json:"totalCount"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	Data       []T    `json:"data"`
}

// newListResponse slices items into the requested page.
func newListResponse[T any](items []T, offset, limit int) *listResponse[T] {
	total := len(items)
	start := min(offset, total)
	end := min(start+limit, total)

	return &listResponse[T]{
		Object:     "list",
		HasMore:    end < total,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		Data:       append([]T{}, items[start:end]...),
	}
}

// ErrorEntry is one element of the Asaas error payload.
type ErrorEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ErrorResponse is the Asaas error payload.
type ErrorResponse struct {
	Errors []ErrorEntry `json:"errors"`
}

// NewErrorResponse creates a payload carrying a single error.
func NewErrorResponse(code, description string) *ErrorResponse {
	return &ErrorResponse{Errors: []ErrorEntry{{Code: code, Description: description}}}
}

// pageQuery carries the pagination query parameters.
type pageQuery struct {
	Offset int `form:"offset" json:"offset" validate:"gte=0"`
	Limit  int `form:"limit" json:"limit" validate:"gte=0,lte=100"`
}

func (q *pageQuery) limit() int {
	if q.Limit == 0 {
		return 10
	}

	return q.Limit
}

type customerQuery struct {
	pageQuery
	Name              string `form:"name"`
	Email             string `form:"email"`
	CpfCnpj           string `form:"cpfCnpj"`
	ExternalReference string `form:"externalReference"`
}

type paymentQuery struct {
	pageQuery
	Customer    string `form:"customer"`
	Status      string `form:"status"`
	BillingType string `form:"billingType"`
}

type customerRequest struct {
	Name                 string `json:"name" validate:"notempty"`
	Email                string `json:"email" validate:"omitempty,email"`
	Company              string `json:"company"`
	Phone                string `json:"phone"`
	MobilePhone          string `json:"mobilePhone"`
	Address              string `json:"address"`
	AddressNumber        string `json:"addressNumber"`
	Complement           string `json:"complement"`
	Province             string `json:"province"`
	PostalCode           string `json:"postalCode"`
	CpfCnpj              string `json:"cpfCnpj" validate:"omitempty,numeric,min=11,max=14"`
	AdditionalEmails     string `json:"additionalEmails"`
	ExternalReference    string `json:"externalReference"`
	NotificationDisabled bool   `json:"notificationDisabled"`
	Observations         string `json:"observations"`
	GroupName            string `json:"groupName"`
}

type paymentRequest struct {
	Customer          string  `json:"customer" validate:"notempty"`
	BillingType       string  `json:"billingType" validate:"oneof=BOLETO CREDIT_CARD PIX UNDEFINED"`
	Value             float64 `json:"value" validate:"gt=0"`
	DueDate           string  `json:"dueDate" validate:"datetime=2006-01-02"`
	Description       string  `json:"description"`
	ExternalReference string  `json:"externalReference"`
}

type paymentUpdateRequest struct {
	BillingType string  `json:"billingType" validate:"omitempty,oneof=BOLETO CREDIT_CARD PIX UNDEFINED"`
	Value       float64 `json:"value" validate:"gte=0"`
	DueDate     string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Description string  `json:"description"`
}

type refundRequest struct {
	Value       float64 `json:"value" validate:"gte=0"`
	Description string  `json:"description"`
}

type creditCardRequest struct {
	HolderName  string `json:"holderName" validate:"notempty"`
	Number      string `json:"number" validate:"notempty"`
	ExpiryMonth string `json:"expiryMonth" validate:"len=2,numeric"`
	ExpiryYear  string `json:"expiryYear" validate:"len=4,numeric"`
	CCV         string `json:"ccv" validate:"numeric,min=3,max=4"`
}

type holderInfoRequest struct {
	Name          string `json:"name" validate:"notempty"`
	Email         string `json:"email" validate:"email"`
	CpfCnpj       string `json:"cpfCnpj" validate:"numeric"`
	PostalCode    string `json:"postalCode" validate:"notempty"`
	AddressNumber string `json:"addressNumber" validate:"notempty"`
	Phone         string `json:"phone"`
	MobilePhone   string `json:"mobilePhone"`
}

type payWithCreditCardRequest struct {
	CreditCard           creditCardRequest `json:"creditCard"`
	CreditCardHolderInfo holderInfoRequest `json:"creditCardHolderInfo"`
}

type tokenizeRequest struct {
	Customer             string            `json:"customer" validate:"notempty"`
	CreditCard           creditCardRequest `json:"creditCard"`
	CreditCardHolderInfo holderInfoRequest `json:"creditCardHolderInfo"`
	RemoteIP             string            `json:"remoteIp" validate:"ip"`
}
