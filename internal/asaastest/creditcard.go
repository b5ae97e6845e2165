package asaastest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) tokenize(c *gin.Context) {
	var req tokenizeRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cus := s.findCustomer(req.Customer)
	if cus == nil || cus.Deleted {
		badRequest(c, "invalid_customer", "Cliente inexistente ou removido.")
		return
	}

	token, ok := s.chargeCard(c, &req.CreditCard)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, token)
}
