// Package gziphttp provides middleware for handling gzip-compressed HTTP
// requests and responses. Request bodies arriving with Content-Encoding
// "gzip" are transparently decompressed and responses are compressed when
// the client accepts it.
package gziphttp

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
		return w
	},
}

type compressedReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressedReader(requestBody io.ReadCloser) (*compressedReader, error) {
	zippedRequestBody, err := gzip.NewReader(requestBody)
	if err != nil {
		return nil, err
	}

	return &compressedReader{
		r:  requestBody,
		zr: zippedRequestBody,
	}, nil
}

func (c *compressedReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

func (c *compressedReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}

type compressedResponseWriter struct {
	w  http.ResponseWriter
	zw *gzip.Writer
}

func newCompressedResponseWriter(w http.ResponseWriter) *compressedResponseWriter {
	zw := gzipWriterPool.Get().(*gzip.Writer)
	zw.Reset(w)
	return &compressedResponseWriter{
		w:  w,
		zw: zw,
	}
}

func (c *compressedResponseWriter) Header() http.Header {
	return c.w.Header()
}

func (c *compressedResponseWriter) WriteHeader(statusCode int) {
	c.w.WriteHeader(statusCode)
}

func (c *compressedResponseWriter) Write(p []byte) (int, error) {
	return c.zw.Write(p)
}

func (c *compressedResponseWriter) Close() error {
	err := c.zw.Close()
	if err != nil {
		return err
	}
	gzipWriterPool.Put(c.zw)
	return nil
}

// CompressResponse compresses the response body when the client announces
// gzip support via Accept-Encoding. WebSocket upgrade requests pass through
// untouched since the hijacked connection cannot be wrapped.
func CompressResponse(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		finalResponse := response

		clientAcceptsGzip := strings.Contains(request.Header.Get("Accept-Encoding"), "gzip")
		isUpgrade := request.Header.Get("Upgrade") != ""
		if clientAcceptsGzip && !isUpgrade {
			response.Header().Set("Content-Encoding", "gzip")
			responseWithCompression := newCompressedResponseWriter(response)
			finalResponse = responseWithCompression
			defer responseWithCompression.Close()
		}

		h.ServeHTTP(finalResponse, request)
	}

	return http.HandlerFunc(middleware)
}

// DecompressRequest replaces a gzip-encoded request body with a decompressing
// reader before passing the request down the chain. A body which cannot be
// read as a gzip stream yields 400 Bad Request.
func DecompressRequest(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		clientSendsGzippedData := strings.Contains(request.Header.Get("Content-Encoding"), "gzip")
		if clientSendsGzippedData {
			requestBodyWithCompression, err := newCompressedReader(request.Body)
			if err != nil {
				response.WriteHeader(http.StatusBadRequest)
				return
			}
			request.Body = requestBodyWithCompression
			defer requestBodyWithCompression.Close()
		}

		h.ServeHTTP(response, request)
	}

	return http.HandlerFunc(middleware)
}
