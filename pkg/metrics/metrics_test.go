package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterCollectors(reg) })

	FoodsCreated.Inc()
	HTTPRequests.WithLabelValues("/food", "GET", "200").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["cardapio_foods_created_total"])
	require.True(t, names["cardapio_http_requests_total"])

	// a second registration on the same registry is a programming error
	require.Panics(t, func() { RegisterCollectors(reg) })
}
