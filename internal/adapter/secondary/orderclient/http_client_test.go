package orderclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/microshop/payment-service/internal/core"
	"github.com/stretchr/testify/require"
)

func TestHTTPOrderClient_FetchOrder(t *testing.T) {
	t.Run("decodes the order view on 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/orders/o1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"orderId":"o1","orderStatus":"ORDERED"}`))
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL, time.Second)
		order, err := client.FetchOrder(context.Background(), "o1")

		require.NoError(t, err)
		require.Equal(t, "o1", order.OrderID)
		require.Equal(t, "ORDERED", order.OrderStatus)
	})

	t.Run("404 classifies as permanent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL, time.Second)
		_, err := client.FetchOrder(context.Background(), "missing")

		var remote *core.RemoteError
		require.ErrorAs(t, err, &remote)
		require.False(t, remote.Transient)
		require.Equal(t, "missing", remote.OrderID)
	})

	t.Run("5xx classifies as transient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL, time.Second)
		_, err := client.FetchOrder(context.Background(), "o1")

		var remote *core.RemoteError
		require.ErrorAs(t, err, &remote)
		require.True(t, remote.Transient)
	})

	t.Run("connection failure classifies as transient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing listening anymore

		client := NewHTTPOrderClient(srv.URL, time.Second)
		_, err := client.FetchOrder(context.Background(), "o1")

		var remote *core.RemoteError
		require.ErrorAs(t, err, &remote)
		require.True(t, remote.Transient)
	})

	t.Run("malformed body classifies as transient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not-json"))
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL, time.Second)
		_, err := client.FetchOrder(context.Background(), "o1")

		var remote *core.RemoteError
		require.ErrorAs(t, err, &remote)
		require.True(t, remote.Transient)
	})
}

func TestHTTPOrderClient_AdvanceOrderStatus(t *testing.T) {
	t.Run("PATCH with empty body succeeds on 2xx", func(t *testing.T) {
		var gotMethod, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL+"/", time.Second)
		err := client.AdvanceOrderStatus(context.Background(), "o1")

		require.NoError(t, err)
		require.Equal(t, http.MethodPatch, gotMethod)
		require.Equal(t, "/orders/o1/status", gotPath)
	})

	t.Run("404 classifies as permanent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL, time.Second)
		err := client.AdvanceOrderStatus(context.Background(), "o1")

		var remote *core.RemoteError
		require.ErrorAs(t, err, &remote)
		require.False(t, remote.Transient)
	})

	t.Run("non-2xx non-404 classifies as transient", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewHTTPOrderClient(srv.URL, time.Second)
		err := client.AdvanceOrderStatus(context.Background(), "o1")

		var remote *core.RemoteError
		require.ErrorAs(t, err, &remote)
		require.True(t, remote.Transient)
	})
}

func TestHTTPOrderClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPOrderClient(srv.URL, 20*time.Millisecond)
	_, err := client.FetchOrder(context.Background(), "o1")

	var remote *core.RemoteError
	require.ErrorAs(t, err, &remote)
	require.True(t, remote.Transient)
	require.Error(t, remote.Err)
}
