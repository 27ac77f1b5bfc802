package jsonrpc

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := response{JsonRPC: "2.0"}

		assert.NoError(t, resp.Err())
	})

	t.Run("returns the provider error", func(t *testing.T) {
		resp := response{
			JsonRPC: "2.0",
			Error:   &ProviderError{Code: -32601, Message: "method not found"},
		}

		err := resp.Err()

		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.EqualError(t, err, "provider error: [-32601] - method not found")

		var providerErr *ProviderError
		require.ErrorAs(t, err, &providerErr)
		assert.Equal(t, -32601, providerErr.Code)
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("sends a well formed request", func(t *testing.T) {
		var got request
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": "0x10", "id": got.ID})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.URL)

		result, err := c.Fetch(t.Context(), "eth_getTransactionReceipt", "0xabc")

		require.NoError(t, err)
		assert.JSONEq(t, `"0x10"`, string(result))
		assert.Equal(t, "2.0", got.JsonRPC)
		assert.Equal(t, "eth_getTransactionReceipt", got.Method)
		assert.Equal(t, []any{"0xabc"}, got.Params)
		_, err = uuid.Parse(got.ID)
		assert.NoError(t, err)
	})

	t.Run("sends an empty params array without params", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var raw map[string]json.RawMessage
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			assert.JSONEq(t, `[]`, string(raw["params"]))

			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": "0x1", "id": "1"})
		}))
		defer mockServer.Close()

		_, err := NewClient(mockServer.URL).Fetch(t.Context(), "eth_blockNumber")

		assert.NoError(t, err)
	})

	t.Run("response with JSON-RPC error", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error": map[string]any{
					"code":    -32601,
					"message": "method not found",
				},
				"id": "1",
			})
		}))
		defer mockServer.Close()

		result, err := NewClient(mockServer.URL).Fetch(t.Context(), "nonexistent_method")

		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("malformed JSON response", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer mockServer.Close()

		result, err := NewClient(mockServer.URL).Fetch(t.Context(), "bad_json")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid character")
	})

	t.Run("non-2xx status", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer mockServer.Close()

		_, err := NewClient(mockServer.URL).Fetch(t.Context(), "eth_blockNumber")

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}

			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": "0x1", "id": "1"})
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.URL, WithRetryWaitMin(time.Millisecond), WithRetryWaitMax(time.Millisecond))

		result, err := c.Fetch(t.Context(), "eth_blockNumber")

		require.NoError(t, err)
		assert.JSONEq(t, `"0x1"`, string(result))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("server errors after retries are exhausted", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer mockServer.Close()

		c := NewClient(mockServer.URL, WithRetryMax(0))

		_, err := c.Fetch(t.Context(), "eth_blockNumber")

		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("network error when server is down", func(t *testing.T) {
		mockServer := httptest.NewServer(nil)
		mockServer.Close()

		c := NewClient(mockServer.URL,
			WithTimeout(1*time.Second),
			WithRetryMax(0),
		)

		result, err := c.Fetch(t.Context(), "network_failure")

		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrProviderReturnedError))
		assert.Nil(t, result)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("uses default configuration when no options are provided", func(t *testing.T) {
		client := NewClient("http://localhost:8545")

		assert.Equal(t, "http://localhost:8545", client.providerEndpoint)
		assert.Equal(t, 5*time.Second, client.httpClient.HTTPClient.Timeout)
		assert.Equal(t, 1*time.Second, client.httpClient.RetryWaitMin)
		assert.Equal(t, 5*time.Second, client.httpClient.RetryWaitMax)
		assert.Equal(t, 2, client.httpClient.RetryMax)
	})

	t.Run("applies all custom options correctly", func(t *testing.T) {
		c := NewClient(
			"http://localhost:8545",
			WithTimeout(9*time.Second),
			WithRetryWaitMin(111*time.Millisecond),
			WithRetryWaitMax(3*time.Second),
			WithRetryMax(7),
		)

		assert.Equal(t, 9*time.Second, c.httpClient.HTTPClient.Timeout)
		assert.Equal(t, 111*time.Millisecond, c.httpClient.RetryWaitMin)
		assert.Equal(t, 3*time.Second, c.httpClient.RetryWaitMax)
		assert.Equal(t, 7, c.httpClient.RetryMax)
	})
}
