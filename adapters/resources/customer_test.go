package resources

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/ports"
)

func customerList(items ...string) []byte {
	data := "["
	for i, it := range items {
		if i > 0 {
			data += ","
		}
		data += it
	}
	data += "]"

	return fmt.Appendf(nil,
		`{"object":"list","hasMore":false,"totalCount":%d,"limit":10,"offset":0,"data":%s}`,
		len(items), data)
}

func TestNewCustomerResource_PanicsWithoutAdapter(t *testing.T) {
	assert.Panics(t, func() {
		NewCustomerResource(Config{Endpoint: testEndpoint}, nil)
	})
}

func TestCustomerResource_GetByID(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Get(mock.Anything, testEndpoint+"/customers/cus_000005219613").
		Return([]byte(customerJSON), nil).Once()

	c, err := NewCustomerResource(cfg, nil).GetByID(context.Background(), "cus_000005219613")
	require.NoError(t, err)

	assert.Equal(t, "cus_000005219613", c.ID)
	assert.Equal(t, "Marcelo Almeida", c.Name)
	assert.Equal(t, "marcelo.almeida@gmail.com", c.Email)
	assert.Equal(t, domain.PersonTypeFisica, c.PersonType)
	assert.Equal(t, "São Paulo", c.City)
	assert.Equal(t, "ótimo pagador", c.Observations)
	assert.Equal(t, time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC), c.DateCreated)
	assert.Empty(t, c.Company, "absent fields stay zero")
}

func TestCustomerResource_GetByID_Errors(t *testing.T) {
	tests := []struct {
		name    string
		errIn   error
		checkFn func(error) bool
	}{
		{
			name:    "not found",
			errIn:   ports.NewStatusError("GET", "u", 404, []byte(`{"errors":[{"code":"not_found","description":"x"}]}`)),
			checkFn: domain.IsNotFound,
		},
		{
			name:    "api error",
			errIn:   ports.NewStatusError("GET", "u", 401, nil),
			checkFn: domain.IsAPIError,
		},
		{
			name:    "transport",
			errIn:   errors.New("connection reset by peer"),
			checkFn: domain.IsTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, adapter := testConfig(t)
			adapter.EXPECT().Get(mock.Anything, testEndpoint+"/customers/cus_x").Return(nil, tt.errIn).Once()

			c, err := NewCustomerResource(cfg, nil).GetByID(context.Background(), "cus_x")

			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, tt.checkFn(err), "unexpected error type: %v", err)
		})
	}
}

func TestCustomerResource_GetByID_EmptyID(t *testing.T) {
	cfg, _ := testConfig(t)

	_, err := NewCustomerResource(cfg, nil).GetByID(context.Background(), " ")

	assert.True(t, domain.IsInvalidArgument(err))
}

func TestCustomerResource_GetByID_Undecodable(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Get(mock.Anything, mock.Anything).Return([]byte(`{"id": 12`), nil).Once()

	_, err := NewCustomerResource(cfg, nil).GetByID(context.Background(), "cus_1")

	assert.True(t, domain.IsDecode(err))
}

func TestCustomerResource_GetAll(t *testing.T) {
	cfg, adapter := testConfig(t)
	body := []byte(`{"object":"list","hasMore":true,"totalCount":42,"limit":2,"offset":4,"data":[
		{"id":"cus_3","name":"C"},{"id":"cus_1","name":"A"}
	]}`)
	adapter.EXPECT().Get(mock.Anything, testEndpoint+"/customers?name=Ana+Souza&offset=4&limit=2").
		Return(body, nil).Once()

	page, err := NewCustomerResource(cfg, nil).GetAll(context.Background(),
		domain.NewFilters("name", "Ana Souza").WithPage(4, 2))
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "cus_3", page.Items[0].ID, "server order is preserved")
	assert.Equal(t, "cus_1", page.Items[1].ID)
	assert.Equal(t, domain.ListMeta{TotalCount: 42, Limit: 2, Offset: 4, HasMore: true}, page.Meta)
}

func TestCustomerResource_GetAll_NoFilters(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Get(mock.Anything, testEndpoint+"/customers").Return(customerList(), nil).Once()

	page, err := NewCustomerResource(cfg, nil).GetAll(context.Background(), domain.Filters{})
	require.NoError(t, err)

	assert.True(t, page.Empty())
	assert.NotNil(t, page.Items)
}

func TestCustomerResource_GetByEmail(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		wantID string
	}{
		{
			name: "first exact match wins",
			body: customerList(
				`{"id":"cus_1","email":"ana@x.com.br"}`,
				`{"id":"cus_2","email":"ana@x.com"}`,
				`{"id":"cus_3","email":"ana@x.com"}`,
			),
			wantID: "cus_2",
		},
		{
			name: "no match",
			body: customerList(`{"id":"cus_1","email":"ANA@X.COM"}`),
		},
		{
			name: "empty list",
			body: customerList(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, adapter := testConfig(t)
			adapter.EXPECT().Get(mock.Anything, testEndpoint+"/customers?email=ana%40x.com").
				Return(tt.body, nil).Once()

			c, err := NewCustomerResource(cfg, nil).GetByEmail(context.Background(), "ana@x.com")
			require.NoError(t, err)

			if tt.wantID == "" {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.Equal(t, tt.wantID, c.ID)
		})
	}
}

func TestCustomerResource_GetByEmail_PropagatesErrors(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, ports.NewStatusError("GET", "u", 500, nil)).Once()

	c, err := NewCustomerResource(cfg, nil).GetByEmail(context.Background(), "ana@x.com")

	assert.Nil(t, c)
	assert.True(t, domain.IsAPIError(err))
}

func TestCustomerResource_GetByEmail_Empty(t *testing.T) {
	cfg, _ := testConfig(t)

	_, err := NewCustomerResource(cfg, nil).GetByEmail(context.Background(), "")

	assert.True(t, domain.IsInvalidArgument(err))
}

func TestCustomerResource_Create(t *testing.T) {
	cfg, adapter := testConfig(t)
	params := domain.Params{"name": "Ana", "email": "ana@x.com", "cpfCnpj": "24971563792"}
	adapter.EXPECT().Post(mock.Anything, testEndpoint+"/customers", params).
		Return([]byte(`{"object":"customer","id":"cus_9","name":"Ana","email":"ana@x.com"}`), nil).Once()

	c, err := NewCustomerResource(cfg, nil).Create(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, &domain.Customer{ID: "cus_9", Name: "Ana", Email: "ana@x.com"}, c)
}

func TestCustomerResource_UpdateUsesPost(t *testing.T) {
	cfg, adapter := testConfig(t)
	params := domain.Params{"mobilePhone": "4799376637"}
	adapter.EXPECT().Post(mock.Anything, testEndpoint+"/customers/cus_1", params).
		Return([]byte(`{"id":"cus_1","mobilePhone":"4799376637"}`), nil).Once()

	c, err := NewCustomerResource(cfg, nil).Update(context.Background(), "cus_1", params)
	require.NoError(t, err)

	assert.Equal(t, "4799376637", c.MobilePhone)
}

func TestCustomerResource_UpdateNilParamsSendEmptyObject(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Post(mock.Anything, testEndpoint+"/customers/cus_1", domain.Params{}).
		Return([]byte(`{"id":"cus_1","name":"Ana"}`), nil).Once()

	c, err := NewCustomerResource(cfg, nil).Update(context.Background(), "cus_1", nil)
	require.NoError(t, err)

	assert.Equal(t, "Ana", c.Name)
}

func TestCustomerResource_Update_Rejected(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Post(mock.Anything, testEndpoint+"/customers/cus_1", mock.Anything).
		Return(nil, ports.NewStatusError("POST", "u", 400,
			[]byte(`{"errors":[{"code":"invalid_cpfCnpj","description":"O CPF/CNPJ informado é inválido."}]}`))).Once()

	_, err := NewCustomerResource(cfg, nil).Update(context.Background(), "cus_1", domain.Params{"cpfCnpj": "1"})

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.True(t, apiErr.HasCode("invalid_cpfCnpj"))
}

func TestCustomerResource_Delete(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Delete(mock.Anything, testEndpoint+"/customers/cus_1").
		Return([]byte(`{"deleted":true,"id":"cus_1"}`), nil).Once()

	err := NewCustomerResource(cfg, nil).Delete(context.Background(), "cus_1")

	require.NoError(t, err)
	adapter.AssertNumberOfCalls(t, "Delete", 1)
}

func TestCustomerResource_Delete_NotFound(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Delete(mock.Anything, mock.Anything).
		Return(nil, ports.NewStatusError("DELETE", "u", 404, nil)).Once()

	err := NewCustomerResource(cfg, nil).Delete(context.Background(), "cus_missing")

	assert.True(t, domain.IsNotFound(err))
}

func TestCustomerResource_Restore(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Post(mock.Anything, testEndpoint+"/customers/cus_1/restore", nil).
		Return([]byte(`{"id":"cus_1","deleted":false}`), nil).Once()

	c, err := NewCustomerResource(cfg, nil).Restore(context.Background(), "cus_1")
	require.NoError(t, err)

	assert.False(t, c.Deleted)
}

func TestCustomerResource_PaymentsMergesCustomerFirst(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Get(mock.Anything, testEndpoint+"/payments?customer=cus_1&customer_extra=1&billingType=PIX").
		Return([]byte(`{"object":"list","totalCount":1,"data":[{"id":"pay_1","customer":"cus_1"}]}`), nil).Once()

	page, err := NewCustomerResource(cfg, nil).Payments(context.Background(), "cus_1",
		domain.NewFilters("customer", "cus_other", "customer_extra", "1", "billingType", "PIX"))
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "cus_1", page.Items[0].Customer)
}

func TestCustomerResource_GetPaymentsInDebt(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().
		Get(mock.Anything, testEndpoint+"/payments?customer=cus_1&status=OVERDUE%2CDUNNING_REQUESTED%2CCHARGEBACK_REQUESTED%2CCHARGEBACK_DISPUTE%2CAWAITING_CHARGEBACK_REVERSAL").
		Return([]byte(`{"object":"list","totalCount":1,"data":[{"id":"pay_1","status":"OVERDUE"}]}`), nil).Once()

	page, err := NewCustomerResource(cfg, nil).GetPaymentsInDebt(context.Background(), "cus_1")
	require.NoError(t, err)

	require.Equal(t, 1, page.Len())
	assert.True(t, page.Items[0].IsInDebt())
}

func TestCustomerResource_InDebt(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{name: "has overdue payment", body: `{"data":[{"id":"pay_1","status":"OVERDUE"}]}`, expected: true},
		{name: "no payments", body: `{"data":[]}`, expected: false},
		{name: "missing data", body: `{"object":"list"}`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, adapter := testConfig(t)
			adapter.EXPECT().Get(mock.Anything, mock.Anything).Return([]byte(tt.body), nil).Once()

			inDebt, err := NewCustomerResource(cfg, nil).InDebt(context.Background(), "cus_1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, inDebt)
		})
	}
}

func TestCustomerResource_InDebt_Error(t *testing.T) {
	cfg, adapter := testConfig(t)
	adapter.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	inDebt, err := NewCustomerResource(cfg, nil).InDebt(context.Background(), "cus_1")

	assert.False(t, inDebt)
	assert.True(t, domain.IsTransport(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
