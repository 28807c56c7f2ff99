package http

import (
	"strings"
	"testing"

	"github.com/indigo-web/webfolder/http"
	"github.com/indigo-web/webfolder/internal/tcp/dummy"
	"github.com/indigo-web/webfolder/router/simple"
	"go.uber.org/zap"
)

var (
	simpleGET      = []byte("GET / HTTP/1.1\r\n\r\n")
	fiveHeadersGET = []byte(
		"GET /" + strings.Repeat("a", 500) + " HTTP/1.1\r\n" +
			"Hello: world\r\n" +
			"One: ok\r\n" +
			"Content-Type: nothing but true;q=0.9\r\n" +
			"Four: lorem ipsum\r\n" +
			"Mistake: is made here\r\n" +
			"\r\n",
	)
	simplePOST  = []byte("POST / HTTP/1.1\r\nContent-Length: 13\r\n\r\nHello, world!")
	chunkedPOST = []byte(
		"POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n" +
			"7\r\nHello, \r\n6\r\nworld!\r\n0\r\n\r\n",
	)
)

func benchSession(b *testing.B, pieces ...[]byte) {
	var size int
	for _, piece := range pieces {
		size += len(piece)
	}

	respond := func(*http.Request) *http.Response {
		return http.NewResponse().Header("Hello", "World")
	}
	client := dummy.NewCircularClient(pieces...)
	session := NewSession(client, simple.New(respond), 4096, zap.NewNop())
	b.SetBytes(int64(size))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !session.HandleRequest() {
			b.Fatalf("request failed in state %s", session.State())
		}
	}
}

func BenchmarkSession(b *testing.B) {
	b.Run("simple get", func(b *testing.B) {
		benchSession(b, simpleGET)
	})

	b.Run("5 headers", func(b *testing.B) {
		benchSession(b, fiveHeadersGET)
	})

	b.Run("content length", func(b *testing.B) {
		benchSession(b, simplePOST)
	})

	b.Run("chunked", func(b *testing.B) {
		benchSession(b, chunkedPOST)
	})
}
