package serve_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark"
	"github.com/xy-planning-network/waymark/serve"
	"golang.org/x/time/rate"
)

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	adapter := func(name string) serve.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") })

	// Act
	serve.Chain(h, adapter("first"), adapter("second")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	actual := serve.RequestID()

	// Assert
	actual(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		require.NotZero(t, waymark.NavigationIDFromContext(rx.Context()))
	})).ServeHTTP(w, r)
}

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		header   string
		value    string
		expected string
	}{
		{"None", "", "", "0.0.0.0"},
		{"Forwarded", "X-Forwarded-For", "8.8.8.8", "8.8.8.8"},
		{"Rightmost-Public", "X-Forwarded-For", "1.1.1.1, 8.8.8.8, 10.0.0.1", "8.8.8.8"},
		{"Private-Only", "X-Forwarded-For", "192.168.1.1, 10.1.2.3", "0.0.0.0"},
		{"Real-Ip", "X-Real-Ip", "9.9.9.9", "9.9.9.9"},
		{"Garbage", "X-Real-Ip", "not an ip", "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			hm := make(http.Header)
			if tc.header != "" {
				hm.Set(tc.header, tc.value)
			}

			// Act + Assert
			require.Equal(t, tc.expected, serve.GetIPAddress(hm))
		})
	}
}

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := serve.NewVisitors(5, 20)

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))
		require.Equal(t, 1, vs.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := serve.NewVisitors(5, 20)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				vs.Fetch("127.0.0.1")
			}()
		}

		wg.Wait()

		// Assert
		require.Equal(t, 1, vs.Len())
	})
}

func TestRateLimit(t *testing.T) {
	// Arrange
	h := serve.RateLimit(serve.NewVisitors(rate.Every(time.Hour), 2))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	// Act
	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	// Assert
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNoopAdapters(t *testing.T) {
	// Arrange
	var called bool
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	// Act
	serve.Chain(h, serve.CORS(""), serve.LogRequest(nil), serve.RateLimit(nil)).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.True(t, called)
}
