// Package fixtures generates sandbox test data: credit cards that Asaas
// sandbox approves or declines, pt_BR holder names and valid CPFs.
package fixtures

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/jsamuelsen/go-asaas/domain"
)

// Sandbox card numbers. Sandbox approves every other card.
const (
	ApprovedCardNumber       = "4444 4444 4444 4444"
	DeclinedVisaNumber       = "4916561358240741"
	DeclinedMastercardNumber = "5184019740373151"
	TestCCV                  = "123"
)

// Brand selects which declined card FillWrong uses.
type Brand string

const (
	BrandVisa       Brand = "Visa"
	BrandMastercard Brand = "Mastercard"
)

var firstNames = []string{
	"Ana", "Beatriz", "Bruno", "Camila", "Carlos", "Daniela", "Eduardo", "Fernanda",
	"Gabriel", "Helena", "Igor", "Juliana", "Larissa", "Lucas", "Marcelo", "Mariana",
	"Otávio", "Patrícia", "Rafael", "Sofia", "Thiago", "Vitória",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Cardoso", "Carvalho", "Costa", "Ferreira", "Gomes", "Lima",
	"Martins", "Oliveira", "Pereira", "Ribeiro", "Rocha", "Santos", "Silva", "Souza",
}

var emailDomains = []string{"gmail.com", "hotmail.com", "uol.com.br", "terra.com.br", "example.com.br"}

// Generator produces fixtures. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New creates a generator. The same seed yields the same sequence of names
// and documents; now drives card expiry dates and defaults to time.Now.
func New(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}

	return &Generator{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // test data
		now: now,
	}
}

// Fill populates card with the sandbox card that is always approved,
// expiring in the current month of next year.
func (g *Generator) Fill(card *domain.CreditCard) *domain.CreditCard {
	if card == nil {
		card = &domain.CreditCard{}
	}

	now := g.now()
	card.Number = ApprovedCardNumber
	card.HolderName = g.Name()
	card.ExpiryMonth = fmt.Sprintf("%02d", int(now.Month()))
	card.ExpiryYear = fmt.Sprintf("%04d", now.Year()+1)
	card.CCV = TestCCV

	return card
}

// FillWrong populates card with a sandbox card that is always declined,
// expiring this month.
func (g *Generator) FillWrong(card *domain.CreditCard, brand Brand) *domain.CreditCard {
	if card == nil {
		card = &domain.CreditCard{}
	}

	now := g.now()
	card.Number = DeclinedMastercardNumber
	if brand == BrandVisa || brand == "" {
		card.Number = DeclinedVisaNumber
	}
	card.HolderName = g.Name()
	card.ExpiryMonth = fmt.Sprintf("%02d", int(now.Month()))
	card.ExpiryYear = fmt.Sprintf("%04d", now.Year())
	card.CCV = TestCCV

	return card
}

// Name returns a pt_BR full name.
func (g *Generator) Name() string {
	return firstNames[g.rnd.IntN(len(firstNames))] + " " +
		lastNames[g.rnd.IntN(len(lastNames))] + " " +
		lastNames[g.rnd.IntN(len(lastNames))]
}

// Email derives an address from name with a random suffix.
func (g *Generator) Email(name string) string {
	local := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '.'
		case r > unicode.MaxASCII:
			return -1
		default:
			return unicode.ToLower(r)
		}
	}, name)

	return fmt.Sprintf("%s%d@%s", local, g.rnd.IntN(1000), emailDomains[g.rnd.IntN(len(emailDomains))])
}

// CPF returns an 11-digit CPF with valid check digits.
func (g *Generator) CPF() string {
	digits := make([]int, 11)
	for i := range 9 {
		digits[i] = g.rnd.IntN(10)
	}
	digits[9] = cpfCheckDigit(digits[:9])
	digits[10] = cpfCheckDigit(digits[:10])

	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}

	return sb.String()
}

// Phone returns a landline in DDD + 8 digits form.
func (g *Generator) Phone() string {
	return fmt.Sprintf("%02d3%07d", 11+g.rnd.IntN(89), g.rnd.IntN(10_000_000))
}

// MobilePhone returns a mobile number in DDD + 9 digits form.
func (g *Generator) MobilePhone() string {
	return fmt.Sprintf("%02d9%08d", 11+g.rnd.IntN(89), g.rnd.IntN(100_000_000))
}

// CustomerParams returns a create payload for a random individual customer.
func (g *Generator) CustomerParams() domain.Params {
	name := g.Name()

	return domain.Params{
		"name":        name,
		"email":       g.Email(name),
		"cpfCnpj":     g.CPF(),
		"company":     lastNames[g.rnd.IntN(len(lastNames))] + " Comércio Ltda",
		"phone":       g.Phone(),
		"mobilePhone": g.MobilePhone(),
	}
}

// HolderInfo returns card holder data for a random individual.
func (g *Generator) HolderInfo() *domain.CreditCardHolderInfo {
	name := g.Name()

	return &domain.CreditCardHolderInfo{
		Name:          name,
		Email:         g.Email(name),
		CpfCnpj:       g.CPF(),
		PostalCode:    fmt.Sprintf("%05d-%03d", 1000+g.rnd.IntN(98000), g.rnd.IntN(1000)),
		AddressNumber: fmt.Sprintf("%d", 1+g.rnd.IntN(2000)),
		Phone:         g.Phone(),
		MobilePhone:   g.MobilePhone(),
	}
}

// NormalizeNumber strips spaces and dashes from a card number.
func NormalizeNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)
}

// IsDeclined reports whether number is one of the sandbox declined cards.
func IsDeclined(number string) bool {
	n := NormalizeNumber(number)
	return n == DeclinedVisaNumber || n == DeclinedMastercardNumber
}

// ValidCPF reports whether cpf has 11 digits with correct check digits.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	digits := make([]int, 11)
	allSame := true
	for i, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) && digits[10] == cpfCheckDigit(digits[:10])
}

func cpfCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}

	return rest
}
