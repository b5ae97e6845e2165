package domain

import "time"

// PersonType distinguishes individuals (CPF) from companies (CNPJ).
type PersonType string

const (
	PersonTypeFisica   PersonType = "FISICA"
	PersonTypeJuridica PersonType = "JURIDICA"
)

// Customer is a customer record as held by Asaas.
type Customer struct {
	ID          string
	DateCreated time.Time

	Name        string
	Email       string
	Company     string
	Phone       string
	MobilePhone string
	CpfCnpj     string
	PersonType  PersonType

	Address       string
	AddressNumber string
	Complement    string
	Province      string
	PostalCode    string
	City          string
	State         string
	Country       string

	AdditionalEmails     string
	ExternalReference    string
	NotificationDisabled bool
	Observations         string
	GroupName            string
	Deleted              bool
}
