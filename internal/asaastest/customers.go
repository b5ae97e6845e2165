package asaastest

import (
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

func (s *Server) findCustomer(id string) *Customer {
	for _, c := range s.customers {
		if c.ID == id {
			return c
		}
	}

	return nil
}

func (s *Server) listCustomers(c *gin.Context) {
	var q customerQuery
	if err := bindQuery(c, &q); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]Customer, 0, len(s.customers))
	for _, cus := range s.customers {
		if cus.Deleted {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(cus.Name), strings.ToLower(q.Name)) {
			continue
		}
		if q.Email != "" && !strings.EqualFold(cus.Email, q.Email) {
			continue
		}
		if q.CpfCnpj != "" && cus.CpfCnpj != q.CpfCnpj {
			continue
		}
		if q.ExternalReference != "" && cus.ExternalReference != q.ExternalReference {
			continue
		}
		matched = append(matched, *cus)
	}

	c.JSON(http.StatusOK, newListResponse(matched, q.Offset, q.limit()))
}

func (s *Server) createCustomer(c *gin.Context) {
	var req customerRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, toErrorResponse(err))
		return
	}

	personType := "FISICA"
	if len(req.CpfCnpj) == 14 {
		personType = "JURIDICA"
	}

	cus := s.AddCustomer(Customer{
		Name:                 req.Name,
		Email:                req.Email,
		Company:              req.Company,
		Phone:                req.Phone,
		MobilePhone:          req.MobilePhone,
		Address:              req.Address,
		AddressNumber:        req.AddressNumber,
		Complement:           req.Complement,
		Province:             req.Province,
		PostalCode:           req.PostalCode,
		CpfCnpj:              req.CpfCnpj,
		PersonType:           personType,
		AdditionalEmails:     req.AdditionalEmails,
		ExternalReference:    req.ExternalReference,
		NotificationDisabled: req.NotificationDisabled,
		Observations:         req.Observations,
		GroupName:            req.GroupName,
	})

	c.JSON(http.StatusOK, cus)
}

func (s *Server) getCustomer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cus := s.findCustomer(c.Param("id"))
	if cus == nil {
		notFound(c)
		return
	}

	c.JSON(http.StatusOK, cus)
}

// updateCustomer applies the fields present in the body on top of the stored
// customer. Identity fields cannot be changed.
func (s *Server) updateCustomer(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cus := s.findCustomer(c.Param("id"))
	if cus == nil || cus.Deleted {
		notFound(c)
		return
	}

	updated := *cus
	if err := sonic.ConfigStd.Unmarshal(body, &updated); err != nil {
		badRequest(c, "invalid_request", "Corpo da requisição inválido.")
		return
	}
	updated.Object, updated.ID, updated.DateCreated, updated.Deleted = cus.Object, cus.ID, cus.DateCreated, cus.Deleted

	if strings.TrimSpace(updated.Name) == "" {
		badRequest(c, "invalid_name", "O campo name deve ser informado.")
		return
	}

	*cus = updated
	c.JSON(http.StatusOK, cus)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cus := s.findCustomer(c.Param("id"))
	if cus == nil || cus.Deleted {
		notFound(c)
		return
	}

	cus.Deleted = true
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": cus.ID})
}

func (s *Server) restoreCustomer(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cus := s.findCustomer(c.Param("id"))
	if cus == nil {
		notFound(c)
		return
	}
	if !cus.Deleted {
		badRequest(c, "invalid_action", "Somente clientes removidos podem ser restaurados.")
		return
	}

	cus.Deleted = false
	c.JSON(http.StatusOK, cus)
}
