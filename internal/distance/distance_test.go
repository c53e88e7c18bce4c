package distance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportGapClient_Distance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "CAI", r.URL.Query().Get("from"))
		assert.Equal(t, "DXB", r.URL.Query().Get("to"))
		_, _ = w.Write([]byte(`{"data":{"attributes":{"kilometers":2196.0}}}`))
	}))
	defer srv.Close()

	c := NewAirportGapClient(srv.URL, srv.Client(), zerolog.Nop())

	km, err := c.Distance(context.Background(), "CAI", "DXB")
	require.NoError(t, err)
	assert.Equal(t, 2196.0, km)
}

func TestAirportGapClient_Distance_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: "unexpected status 502",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			wantErr: "parse distance response",
		},
		{
			name: "missing kilometers",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"attributes":{}}}`))
			},
			wantErr: "invalid kilometers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewAirportGapClient(srv.URL, srv.Client(), zerolog.Nop())
			_, err := c.Distance(context.Background(), "CAI", "DXB")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFallbackResolver_PrimaryWins(t *testing.T) {
	primary := Func(func(context.Context, string, string) (float64, error) {
		return 1234, nil
	})
	r := NewFallbackResolver(primary, zerolog.Nop())

	km, err := r.Distance(context.Background(), "CAI", "XYZ")
	require.NoError(t, err)
	assert.Equal(t, 1234.0, km)
}

func TestFallbackResolver_StaticTableOnPrimaryFailure(t *testing.T) {
	primary := Func(func(context.Context, string, string) (float64, error) {
		return 0, errors.New("service down")
	})
	r := NewFallbackResolver(primary, zerolog.Nop())

	km, err := r.Distance(context.Background(), "CAI", "DXB")
	require.NoError(t, err)
	assert.Equal(t, 2196.0, km)
}

func TestFallbackResolver_ReverseRoute(t *testing.T) {
	r := NewFallbackResolver(nil, zerolog.Nop())

	km, err := r.Distance(context.Background(), "DXB", "CAI")
	require.NoError(t, err)
	assert.Equal(t, 2196.0, km)
}

func TestFallbackResolver_Exhausted(t *testing.T) {
	primary := Func(func(context.Context, string, string) (float64, error) {
		return 0, errors.New("service down")
	})
	r := NewFallbackResolver(primary, zerolog.Nop())

	_, err := r.Distance(context.Background(), "AAA", "BBB")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFallbackResolver_PrimaryCalledExactlyOnce(t *testing.T) {
	var calls atomic.Int32
	primary := Func(func(context.Context, string, string) (float64, error) {
		calls.Add(1)
		return 0, errors.New("service down")
	})
	r := NewFallbackResolver(primary, zerolog.Nop())

	_, _ = r.Distance(context.Background(), "CAI", "LHR")
	assert.Equal(t, int32(1), calls.Load(), "no retry: one attempt then fallback")
}

func TestKnownRoute(t *testing.T) {
	tests := []struct {
		origin, destination string
		want                float64
		found               bool
	}{
		{"CAI", "DXB", 2196, true},
		{"DXB", "CAI", 2196, true},
		{"CAI", "JFK", 8965, true},
		{"CAI", "NRT", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.origin+"-"+tt.destination, func(t *testing.T) {
			km, found := KnownRoute(tt.origin, tt.destination)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, km)
		})
	}
}
