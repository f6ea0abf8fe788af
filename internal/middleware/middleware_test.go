package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	trusted, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.168.1.5"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		trusted []netip.Prefix
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "untrusted peer ignores forwarded", trusted: trusted, headers: map[string]string{"X-Forwarded-For": "203.0.113.7"}, remote: "198.51.100.2:443", want: "198.51.100.2"},
		{name: "no proxies configured", headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "203.0.113.8"}, remote: "10.0.0.1:443", want: "10.0.0.1"},
		{name: "trusted peer", trusted: trusted, headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, remote: "10.0.0.1:443", want: "203.0.113.7"},
		{name: "spoofed leftmost hop", trusted: trusted, headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.7"}, remote: "192.168.1.5:443", want: "203.0.113.7"},
		{name: "real ip from trusted peer", trusted: trusted, headers: map[string]string{"X-Real-IP": "203.0.113.9"}, remote: "10.0.0.1:443", want: "203.0.113.9"},
		{name: "only proxies forwarded", trusted: trusted, headers: map[string]string{"X-Forwarded-For": "10.1.1.1"}, remote: "10.0.0.1:443", want: "10.0.0.1"},
		{name: "ipv6 peer", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := ClientIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetClientIP(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	got, err := ParseTrustedProxies([]string{" 10.0.0.7/8 ", "", "::ffff:172.16.0.1"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "10.0.0.0/8", got[0].String())
	assert.Equal(t, "172.16.0.1/32", got[1].String())

	_, err = ParseTrustedProxies([]string{"proxy.internal"})
	assert.Error(t, err)
	_, err = ParseTrustedProxies([]string{"10.0.0.0/40"})
	assert.Error(t, err)
}

func TestGetClientIPMissing(t *testing.T) {
	assert.Equal(t, "unknown", GetClientIP(context.Background()))
}

func TestRequestID(t *testing.T) {
	var got string
	h := RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, id, got)
}
