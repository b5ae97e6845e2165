package domain

import (
	"slices"
	"strings"
	"time"
)

// PaymentStatus represents the state of a payment upstream.
type PaymentStatus string

const (
	PaymentStatusPending                    PaymentStatus = "PENDING"
	PaymentStatusReceived                   PaymentStatus = "RECEIVED"
	PaymentStatusConfirmed                  PaymentStatus = "CONFIRMED"
	PaymentStatusOverdue                    PaymentStatus = "OVERDUE"
	PaymentStatusRefunded                   PaymentStatus = "REFUNDED"
	PaymentStatusReceivedInCash             PaymentStatus = "RECEIVED_IN_CASH"
	PaymentStatusRefundRequested            PaymentStatus = "REFUND_REQUESTED"
	PaymentStatusRefundInProgress           PaymentStatus = "REFUND_IN_PROGRESS"
	PaymentStatusChargebackRequested        PaymentStatus = "CHARGEBACK_REQUESTED"
	PaymentStatusChargebackDispute          PaymentStatus = "CHARGEBACK_DISPUTE"
	PaymentStatusAwaitingChargebackReversal PaymentStatus = "AWAITING_CHARGEBACK_REVERSAL"
	PaymentStatusDunningRequested           PaymentStatus = "DUNNING_REQUESTED"
	PaymentStatusDunningReceived            PaymentStatus = "DUNNING_RECEIVED"
	PaymentStatusAwaitingRiskAnalysis       PaymentStatus = "AWAITING_RISK_ANALYSIS"
)

// InDebtStatuses lists the statuses that count a payment as owed and overdue
// or contested. Order is fixed so the joined filter value is stable.
var InDebtStatuses = []PaymentStatus{
	PaymentStatusOverdue,
	PaymentStatusDunningRequested,
	PaymentStatusChargebackRequested,
	PaymentStatusChargebackDispute,
	PaymentStatusAwaitingChargebackReversal,
}

// paidStatuses lists the statuses where money has reached the merchant.
var paidStatuses = []PaymentStatus{
	PaymentStatusReceived,
	PaymentStatusConfirmed,
	PaymentStatusReceivedInCash,
	PaymentStatusDunningReceived,
}

// InDebtFilterValue returns InDebtStatuses joined by commas, as the status filter expects.
func InDebtFilterValue() string {
	parts := make([]string, len(InDebtStatuses))
	for i, s := range InDebtStatuses {
		parts[i] = string(s)
	}

	return strings.Join(parts, ",")
}

// BillingType is how the payer settles a payment.
type BillingType string

const (
	BillingTypeBoleto     BillingType = "BOLETO"
	BillingTypeCreditCard BillingType = "CREDIT_CARD"
	BillingTypePix        BillingType = "PIX"
	BillingTypeUndefined  BillingType = "UNDEFINED"
)

// Payment is a charge issued to a customer.
type Payment struct {
	ID          string
	DateCreated time.Time

	Customer     string
	Subscription string
	Installment  string

	BillingType   BillingType
	Status        PaymentStatus
	Value         float64
	NetValue      float64
	OriginalValue float64
	InterestValue float64
	Description   string

	DueDate           time.Time
	OriginalDueDate   time.Time
	PaymentDate       time.Time
	ClientPaymentDate time.Time

	InstallmentNumber int
	InvoiceURL        string
	BankSlipURL       string
	InvoiceNumber     string
	ExternalReference string
	Deleted           bool

	// CreditCard is set for card payments once the card was charged.
	CreditCard *CreditCardToken
}

// IsInDebt reports whether the payment status is one of InDebtStatuses.
func (p *Payment) IsInDebt() bool {
	return slices.Contains(InDebtStatuses, p.Status)
}

// IsPaid reports whether the payment has been received or confirmed.
func (p *Payment) IsPaid() bool {
	return slices.Contains(paidStatuses, p.Status)
}

// IsOverdue reports whether the payment is past due and unpaid as of now.
func (p *Payment) IsOverdue(now time.Time) bool {
	if p.Status == PaymentStatusOverdue {
		return true
	}

	if p.Status != PaymentStatusPending || p.DueDate.IsZero() {
		return false
	}

	return now.After(p.DueDate.AddDate(0, 0, 1))
}
