package gasstation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"safeLow": {"maxPriorityFee": 30.5, "maxFee": 31.2},
	"standard": {"maxPriorityFee": 33.1, "maxFee": 34.7},
	"fast": {"maxPriorityFee": 40, "maxFee": 41.6},
	"estimatedBaseFee": 1.6,
	"blockTime": 2,
	"blockNumber": 48215000
}`

func TestStandardFee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	maxFee, maxPriorityFee, err := NewClient(srv.URL, srv.Client()).StandardFee(context.Background())
	require.NoError(t, err)
	require.Equal(t, 34.7, maxFee)
	require.Equal(t, 33.1, maxPriorityFee)
}

func TestStandardFeeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, srv.Client()).StandardFee(context.Background())
	require.ErrorIs(t, err, ErrBadStatus)
	require.Contains(t, err.Error(), "upstream down")
}

func TestStandardFeeEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL, nil).StandardFee(context.Background())
	require.ErrorIs(t, err, ErrEmptyFeeData)
}
