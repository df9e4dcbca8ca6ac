package telemetry

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObserveExposesGaugesOverHTTP(t *testing.T) {
	c := NewCollector()
	c.Observe(Stats{
		NodeCount:    42,
		CacheEntries: 7,
		Population:   big.NewInt(100),
		Generation:   big.NewInt(16),
	})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBigFloat64HandlesNil(t *testing.T) {
	require.Equal(t, 0.0, bigFloat64(nil))
	require.Equal(t, 100.0, bigFloat64(big.NewInt(100)))
}
