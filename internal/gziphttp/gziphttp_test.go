package gziphttp

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, input string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(input))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestDecompressRequest(t *testing.T) {
	var received string
	echo := http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)
		received = string(body)
		response.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(
		http.MethodPost,
		"/guess",
		bytes.NewReader(gzipBytes(t, `{"guess":15}`)),
	)
	request.Header.Set("Content-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	DecompressRequest(echo).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"guess":15}`, received)
}

func TestDecompressRequestRejectsGarbage(t *testing.T) {
	next := http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		t.Fatal("handler must not be reached")
	})

	request := httptest.NewRequest(http.MethodPost, "/guess", strings.NewReader("not a gzip stream"))
	request.Header.Set("Content-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	DecompressRequest(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCompressResponse(t *testing.T) {
	payload := strings.Repeat(`{"result":"too_low"}`, 32)
	handler := http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		response.WriteHeader(http.StatusOK)
		_, err := response.Write([]byte(payload))
		require.NoError(t, err)
	})

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	recorder := httptest.NewRecorder()

	CompressResponse(handler).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(recorder.Body)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, payload, string(decompressed))
}

func TestCompressResponseSkipsClientsWithoutGzip(t *testing.T) {
	handler := http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		_, err := response.Write([]byte("plain"))
		require.NoError(t, err)
	})

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	recorder := httptest.NewRecorder()

	CompressResponse(handler).ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", recorder.Body.String())
}

func TestCompressResponseSkipsUpgradeRequests(t *testing.T) {
	handler := http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		_, err := response.Write([]byte("switching"))
		require.NoError(t, err)
	})

	request := httptest.NewRequest(http.MethodGet, "/users/live", nil)
	request.Header.Set("Accept-Encoding", "gzip")
	request.Header.Set("Upgrade", "websocket")
	recorder := httptest.NewRecorder()

	CompressResponse(handler).ServeHTTP(recorder, request)

	assert.Empty(t, recorder.Header().Get("Content-Encoding"))
	assert.Equal(t, "switching", recorder.Body.String())
}
