package provider_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyhub/sms-relay/internal/domain"
	"github.com/notifyhub/sms-relay/internal/provider"
)

var msg = domain.OutboundMessage{
	Text:         "Your verification code is 123456",
	PhoneNumbers: []string{"+15550001111", "+15550002222"},
}

func TestSMSGateProvider_Send_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/3rdparty/v1/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "relay", user)
		assert.Equal(t, "s3cret", pass)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, map[string]any{"text": msg.Text}, body["textMessage"])
		assert.Equal(t, []any{"+15550001111", "+15550002222"}, body["phoneNumbers"])
		assert.Equal(t, float64(1), body["simNumber"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"m1","state":"Pending"}`))
	}))
	defer server.Close()

	p := provider.NewSMSGateProvider(server.URL+"/", 1, 0)
	resp, err := p.Send(context.Background(), "relay:s3cret", msg)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.True(t, resp.Success())
	assert.Equal(t, "m1", resp.Body["id"])
}

func TestSMSGateProvider_Send_RejectedStatusKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"bad number"}`))
	}))
	defer server.Close()

	p := provider.NewSMSGateProvider(server.URL, 1, 0)
	resp, err := p.Send(context.Background(), "relay:s3cret", msg)
	require.NoError(t, err)
	assert.False(t, resp.Success())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "bad number"}, resp.Body)
}

func TestSMSGateProvider_Send_MalformedBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"html error page", http.StatusBadGateway, `<html>bad gateway</html>`},
		{"object with trailing garbage", http.StatusOK, `{"id":"m1"} trailing garbage`},
		{"two objects", http.StatusOK, `{"id":"m1"}{"id":"m2"}`},
		{"empty body", http.StatusOK, ``},
		{"array instead of object", http.StatusOK, `[{"id":"m1"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			p := provider.NewSMSGateProvider(server.URL, 1, 0)
			resp, err := p.Send(context.Background(), "relay:s3cret", msg)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), "decode response")
		})
	}
}

func TestSMSGateProvider_Send_ConnectionReset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer server.Close()

	p := provider.NewSMSGateProvider(server.URL, 1, 0)
	resp, err := p.Send(context.Background(), "relay:s3cret", msg)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "send request")
}

func TestBasicAuthorization(t *testing.T) {
	assert.Equal(t, "Basic cmVsYXk6czNjcmV0", provider.BasicAuthorization("relay:s3cret"))
}
