package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPlaceOrder(t *testing.T) {
	order := OrderRequest{
		Email:   "olena@example.com",
		Phone:   "+380501234567",
		Address: "Khreshchatyk 12, Kyiv",
		Products: []LineItem{
			{ProductType: "flower", ProductID: "68b1c2d3e4f5a6b7c8d9e0f1", Quantity: 2},
		},
	}

	t.Run("success returns the created id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/orders", r.URL.Path)

			var got OrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, order, got)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"_id": "68b1c2d3e4f5a6b7c8d9e0f2"})
		}))
		defer server.Close()

		id, err := NewClient(server.URL).PlaceOrder(context.Background(), order)
		require.NoError(t, err)
		assert.Equal(t, "68b1c2d3e4f5a6b7c8d9e0f2", id)
	})

	t.Run("failure surfaces the server error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "quantity must be at least 1"})
		}))
		defer server.Close()

		_, err := NewClient(server.URL).PlaceOrder(context.Background(), order)
		require.Error(t, err)
		assert.Equal(t, "quantity must be at least 1", err.Error())
	})

	t.Run("failure without a body falls back to a generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(server.URL).PlaceOrder(context.Background(), order)
		require.Error(t, err)
		assert.Equal(t, genericSubmitError, err.Error())
	})
}
