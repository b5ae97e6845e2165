package asaastest

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/go-asaas/internal/fixtures"
)

func (s *Server) findPayment(id string) *Payment {
	for _, p := range s.payments {
		if p.ID == id {
			return p
		}
	}

	return nil
}

func (s *Server) listPayments(c *gin.Context) {
	var q paymentQuery
	if err := bindQuery(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	var statuses []string
	if q.Status != "" {
		statuses = strings.Split(q.Status, ",")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]Payment, 0, len(s.payments))
	for _, p := range s.payments {
		if p.Deleted {
			continue
		}
		if q.Customer != "" && p.Customer != q.Customer {
			continue
		}
		if len(statuses) > 0 && !slices.Contains(statuses, p.Status) {
			continue
		}
		if q.BillingType != "" && p.BillingType != q.BillingType {
			continue
		}
		matched = append(matched, *p)
	}

	c.JSON(http.StatusOK, newListResponse(matched, q.Offset, q.limit()))
}

func (s *Server) createPayment(c *gin.Context) {
	var req paymentRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	s.mu.Lock()
	cus := s.findCustomer(req.Customer)
	active := cus != nil && !cus.Deleted
	past := req.DueDate < s.today()
	s.mu.Unlock()

	if !active {
		badRequest(c, "invalid_customer", "Cliente inexistente ou removido.")
		return
	}
	if past {
		badRequest(c, "invalid_dueDate", "Não é permitido data de vencimento inferior a hoje.")
		return
	}

	p := s.AddPayment(Payment{
		Customer:          req.Customer,
		BillingType:       req.BillingType,
		Value:             req.Value,
		NetValue:          req.Value,
		Description:       req.Description,
		DueDate:           req.DueDate,
		ExternalReference: req.ExternalReference,
	})

	c.JSON(http.StatusOK, p)
}

func (s *Server) getPayment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(c.Param("id"))
	if p == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (s *Server) updatePayment(c *gin.Context) {
	var req paymentUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(c.Param("id"))
	if p == nil || p.Deleted {
		notFound(c)
		return
	}
	if p.Status != "PENDING" && p.Status != "OVERDUE" {
		badRequest(c, "invalid_action", "Somente cobranças pendentes ou vencidas podem ser alteradas.")
		return
	}

	if req.BillingType != "" {
		p.BillingType = req.BillingType
	}
	if req.Value > 0 {
		p.Value, p.NetValue = req.Value, req.Value
	}
	if req.DueDate != "" {
		p.DueDate = req.DueDate
	}
	if req.Description != "" {
		p.Description = req.Description
	}

	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePayment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(c.Param("id"))
	if p == nil || p.Deleted {
		notFound(c)
		return
	}

	p.Deleted = true
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": p.ID})
}

func (s *Server) restorePayment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(c.Param("id"))
	if p == nil {
		notFound(c)
		return
	}
	if !p.Deleted {
		badRequest(c, "invalid_action", "Somente cobranças removidas podem ser restauradas.")
		return
	}

	p.Deleted = false
	c.JSON(http.StatusOK, p)
}

func (s *Server) refundPayment(c *gin.Context) {
	var req refundRequest
	if c.Request.ContentLength != 0 {
		if err := bindJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, toErrorResponse(err))
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(c.Param("id"))
	if p == nil || p.Deleted {
		notFound(c)
		return
	}
	if p.Status != "RECEIVED" && p.Status != "CONFIRMED" {
		badRequest(c, "invalid_action", "Somente cobranças recebidas ou confirmadas podem ser estornadas.")
		return
	}
	if req.Value > p.Value {
		badRequest(c, "invalid_value", "O valor do estorno não pode ser maior que o valor da cobrança.")
		return
	}

	p.Status = "REFUNDED"
	c.JSON(http.StatusOK, p)
}

func (s *Server) payWithCreditCard(c *gin.Context) {
	var req payWithCreditCardRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(c.Param("id"))
	if p == nil || p.Deleted {
		notFound(c)
		return
	}
	if p.Status != "PENDING" && p.Status != "OVERDUE" {
		badRequest(c, "invalid_action", "Esta cobrança não pode ser paga.")
		return
	}

	token, ok := s.chargeCard(c, &req.CreditCard)
	if !ok {
		return
	}

	today := s.today()
	p.BillingType = "CREDIT_CARD"
	p.Status = "CONFIRMED"
	p.ClientPaymentDate = &today
	p.CreditCard = token

	c.JSON(http.StatusOK, p)
}

// chargeCard mimics the sandbox acquirer. It writes the error response and
// returns false when the card is refused.
func (s *Server) chargeCard(c *gin.Context, card *creditCardRequest) (*CreditCardToken, bool) {
	if fixtures.IsDeclined(card.Number) {
		badRequest(c, "invalid_creditCard",
			"Transação não autorizada. Verifique os dados do cartão de crédito e tente novamente.")
		return nil, false
	}

	number := fixtures.NormalizeNumber(card.Number)
	if len(number) < 13 || len(number) > 19 || strings.Trim(number, "0123456789") != "" {
		badRequest(c, "invalid_creditCard", "Número do cartão de crédito inválido.")
		return nil, false
	}

	expiry, err := time.Parse("2006-01", card.ExpiryYear+"-"+card.ExpiryMonth)
	if err != nil || !expiry.AddDate(0, 1, 0).After(s.now()) {
		badRequest(c, "invalid_creditCard", "Cartão de crédito vencido.")
		return nil, false
	}

	return &CreditCardToken{
		CreditCardNumber: number[len(number)-4:],
		CreditCardBrand:  cardBrand(number),
		CreditCardToken:  uuid.New().String(),
	}, true
}

func cardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "VISA"
	case strings.HasPrefix(number, "5"):
		return "MASTERCARD"
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return "AMEX"
	default:
		return "UNKNOWN"
	}
}
