package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-asaas/internal/asaastest"
)

func TestRun_ListsCustomers(t *testing.T) {
	fake := asaastest.NewServer(asaastest.Options{APIKey: "$aact_cmd"})
	t.Cleanup(fake.Close)

	ana := fake.AddCustomer(asaastest.Customer{Name: "Ana Souza", Email: "ana@x.com"})
	fake.AddCustomer(asaastest.Customer{Name: "Bruno Lima", Email: "bruno@x.com"})
	fake.AddPayment(asaastest.Payment{Customer: ana.ID, Status: "OVERDUE", Value: 30, DueDate: "2026-01-05"})
	fake.AddPayment(asaastest.Payment{Customer: ana.ID, Status: "RECEIVED", Value: 30, DueDate: "2026-01-05"})

	t.Setenv("ASAAS_API_KEY", "$aact_cmd")
	t.Setenv("ASAAS_ENDPOINT", fake.Endpoint())
	t.Setenv("ASAAS_LOG__LEVEL", "error")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out))

	assert.Contains(t, out.String(), "2 customers in total, showing 2; 1 payments in debt")
	assert.Contains(t, out.String(), "Ana Souza")
	assert.Contains(t, out.String(), "bruno@x.com")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("ASAAS_API_KEY", "")

	err := run(context.Background(), &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "asaas.apikey is required")
}

func TestRun_UpstreamRejectsKey(t *testing.T) {
	fake := asaastest.NewServer(asaastest.Options{APIKey: "$aact_right"})
	t.Cleanup(fake.Close)

	t.Setenv("ASAAS_API_KEY", "$aact_wrong")
	t.Setenv("ASAAS_ENDPOINT", fake.Endpoint())
	t.Setenv("ASAAS_LOG__LEVEL", "error")

	err := run(context.Background(), &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing customers")
}
