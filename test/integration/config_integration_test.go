//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-asaas"
	"github.com/jsamuelsen/go-asaas/domain"
	"github.com/jsamuelsen/go-asaas/internal/asaastest"
	"github.com/jsamuelsen/go-asaas/internal/platform/config"
	"github.com/jsamuelsen/go-asaas/internal/platform/logging"
	"github.com/jsamuelsen/go-asaas/internal/platform/metrics"
)

// TestConfig_ShippedProfiles verifies the repository's config files load and
// validate once an API key is supplied.
func TestConfig_ShippedProfiles(t *testing.T) {
	t.Setenv("ASAAS_API_KEY", fakeAPIKey)

	for _, profile := range []string{"sandbox", "production"} {
		t.Run(profile, func(t *testing.T) {
			cfg, err := config.LoadFrom("../../configs", profile)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, profile, cfg.Asaas.Environment)
			_, err = asaas.ParseEnvironment(cfg.Asaas.Environment)
			assert.NoError(t, err)
		})
	}
}

// TestConfig_DrivesClient builds a client the way the sandbox command does and
// checks the recorder saw the call.
func TestConfig_DrivesClient(t *testing.T) {
	fake := asaastest.NewServer(asaastest.Options{APIKey: fakeAPIKey})
	defer fake.Close()

	t.Setenv("ASAAS_API_KEY", fakeAPIKey)
	t.Setenv("ASAAS_ENDPOINT", fake.Endpoint())

	cfg, err := config.LoadFrom("../../configs", "sandbox")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	env, err := asaas.ParseEnvironment(cfg.Asaas.Environment)
	require.NoError(t, err)

	recorder := metrics.NewRecorder()
	client, err := asaas.NewHTTP(asaas.HTTPConfig{
		Environment: env,
		APIKey:      cfg.Asaas.APIKey,
		Endpoint:    cfg.Asaas.Endpoint,
		Timeout:     cfg.Asaas.Timeout,
		UserAgent:   cfg.Asaas.UserAgent,
		Logger:      logging.Discard(),
		Metrics:     recorder,
	})
	require.NoError(t, err)

	_, err = client.Customer().GetAll(context.Background(), domain.Filters{}.WithPage(0, 5))
	require.NoError(t, err)
	require.NoError(t, client.Check(context.Background()))

	requests := fake.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "go-asaas", requests[0].Header.Get("User-Agent"))
	assert.Equal(t, "offset=0&limit=5", requests[0].Query)

	families, err := recorder.Registry().Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != "asaas_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, total)
}
