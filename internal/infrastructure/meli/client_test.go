package meli_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almacenpro/rma-backend/internal/infrastructure/meli"
)

// servidorFalso simula los tres endpoints que usa el cliente: token,
// búsqueda de órdenes y estado de envío.
func servidorFalso(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "cid", r.Form.Get("client_id"))
		assert.Equal(t, "rtok", r.Form.Get("refresh_token"))
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "atok-123",
			"expires_in":   21600,
		})
	})

	mux.HandleFunc("/orders/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer atok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "777", r.URL.Query().Get("seller"))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id":           int64(5001),
					"status":       "paid",
					"date_created": "2026-08-20T10:30:00Z",
					"buyer":        map[string]any{"nickname": "COMPRADOR1"},
					"total_amount": "1250.50",
					"shipping":     map[string]any{"id": int64(9001)},
				},
				{
					"id":           int64(5002),
					"status":       "cancelled",
					"date_created": "2026-08-21T15:00:00Z",
					"buyer":        map[string]any{"nickname": "COMPRADOR2"},
					"total_amount": "300",
					"shipping":     map[string]any{"id": nil},
				},
			},
			"paging": map[string]any{"total": 2, "offset": 0, "limit": 50},
		})
	})

	mux.HandleFunc("/shipments/9001", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer atok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": int64(9001), "status": "delivered"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOrdenesRecientes_ParseaYPagina(t *testing.T) {
	var tokenCalls int32
	srv := servidorFalso(t, &tokenCalls)
	c := meli.NewClientConBase(srv.URL, "cid", "csecret", "rtok", "777")

	desde := time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	ordenes, err := c.OrdenesRecientes(context.Background(), &desde)
	require.NoError(t, err)
	require.Len(t, ordenes, 2)

	assert.Equal(t, int64(5001), ordenes[0].ID)
	assert.Equal(t, "paid", ordenes[0].Estado)
	assert.Equal(t, "COMPRADOR1", ordenes[0].Comprador)
	assert.True(t, ordenes[0].Total.Equal(decimal.RequireFromString("1250.50")))
	require.NotNil(t, ordenes[0].EnvioID)
	assert.Equal(t, int64(9001), *ordenes[0].EnvioID)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC), ordenes[0].FechaCreada)

	// Orden sin envío asociado.
	assert.Nil(t, ordenes[1].EnvioID)
}

func TestEstadoEnvio(t *testing.T) {
	var tokenCalls int32
	srv := servidorFalso(t, &tokenCalls)
	c := meli.NewClientConBase(srv.URL, "cid", "csecret", "rtok", "777")

	estado, err := c.EstadoEnvio(context.Background(), 9001)
	require.NoError(t, err)
	assert.Equal(t, "delivered", estado)
}

// El access token se cachea: dos llamadas seguidas renuevan una sola vez.
func TestToken_SeCacheaEntreLlamadas(t *testing.T) {
	var tokenCalls int32
	srv := servidorFalso(t, &tokenCalls)
	c := meli.NewClientConBase(srv.URL, "cid", "csecret", "rtok", "777")

	_, err := c.OrdenesRecientes(context.Background(), nil)
	require.NoError(t, err)
	_, err = c.EstadoEnvio(context.Background(), 9001)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestSinCredenciales_ErrorDescriptivo(t *testing.T) {
	c := meli.NewClient("", "", "", "")
	_, err := c.OrdenesRecientes(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credenciales OAuth")
}

func TestErrorDeAPI_IncluyeMensajeYStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid_grant", "error": "bad_request"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := meli.NewClientConBase(srv.URL, "cid", "csecret", "rtok", "777")
	_, err := c.OrdenesRecientes(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
	assert.Contains(t, err.Error(), "400")
}
