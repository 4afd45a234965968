package ipchecker

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsMalformedCIDR(t *testing.T) {
	_, err := New("10.0.0.0/33")
	assert.Error(t, err)
}

func TestRequireTrusted(t *testing.T) {
	okHandler := http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		response.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name          string
		trustedSubnet string
		realIP        string
		remoteAddr    string
		expectedCode  int
	}{
		{
			name:          "inside subnet via X-Real-IP",
			trustedSubnet: "10.0.0.0/8",
			realIP:        "10.1.2.3",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "outside subnet",
			trustedSubnet: "10.0.0.0/8",
			realIP:        "192.168.1.5",
			expectedCode:  http.StatusForbidden,
		},
		{
			name:          "no subnet configured",
			trustedSubnet: "",
			realIP:        "10.1.2.3",
			expectedCode:  http.StatusForbidden,
		},
		{
			name:          "falls back to RemoteAddr",
			trustedSubnet: "127.0.0.0/8",
			remoteAddr:    "127.0.0.1:54321",
			expectedCode:  http.StatusOK,
		},
		{
			name:          "unparseable RemoteAddr",
			trustedSubnet: "127.0.0.0/8",
			remoteAddr:    "not-an-address",
			expectedCode:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := New(tt.trustedSubnet)
			require.NoError(t, err)

			request := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
			if tt.realIP != "" {
				request.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.remoteAddr != "" {
				request.RemoteAddr = tt.remoteAddr
			}

			recorder := httptest.NewRecorder()
			checker.RequireTrusted(okHandler).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}
