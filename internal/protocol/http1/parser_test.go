package http1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/webfolder/http/status"
	"github.com/indigo-web/webfolder/kv"
	"github.com/stretchr/testify/require"
)

func TestParseHeaders(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		request, err := ParseHeaders([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "GET", request.Method)
		require.Equal(t, "/", request.Path)
		require.Equal(t, "HTTP/1.1", request.Protocol)
		require.True(t, request.Headers.Empty())
		require.Nil(t, request.RawBody)
		require.Nil(t, request.Body)
	})

	t.Run("headers as received", func(t *testing.T) {
		raw := "POST /upload?x=1 HTTP/1.1\r\n" +
			"Host: localhost\r\n" +
			"content-length: 13\r\n" +
			"X-Empty: \r\n" +
			"X-Colons: a: b: c\r\n" +
			"Host: duplicate\r\n" +
			"\r\n"
		request, err := ParseHeaders([]byte(raw))
		require.NoError(t, err)
		require.Equal(t, "/upload?x=1", request.Path)

		want := []kv.Pair{
			{"Host", "localhost"},
			{"content-length", "13"},
			{"X-Empty", ""},
			{"X-Colons", "a: b: c"},
			{"Host", "duplicate"},
		}
		require.Equal(t, want, request.Headers.Expose())
		require.False(t, request.Headers.Has("Content-Length"))
	})

	t.Run("many headers", func(t *testing.T) {
		headers := generateHeaders(50)
		request, err := ParseHeaders([]byte(generateRequest("/", headers)))
		require.NoError(t, err)
		require.Equal(t, len(headers), request.Headers.Len())

		for i, pair := range request.Headers.Expose() {
			require.Equal(t, headers[i], pair.Key+": "+pair.Value)
		}
	})

	t.Run("unicode", func(t *testing.T) {
		request, err := ParseHeaders([]byte("GET /привіт HTTP/1.1\r\nX-Name: Павло\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "/привіт", request.Path)
		require.Equal(t, "Павло", request.Headers.Value("X-Name"))
	})

	malformed := []struct {
		Name, Raw string
	}{
		{"two tokens", "GET /\r\n\r\n"},
		{"one token", "GET\r\n\r\n"},
		{"four tokens", "GET / HTTP/1.1 extra\r\n\r\n"},
		{"double space", "GET  / HTTP/1.1\r\n\r\n"},
		{"empty request line", "\r\n\r\n"},
		{"no separator", "GET / HTTP/1.1\r\nHost localhost\r\n\r\n"},
		{"colon without space", "GET / HTTP/1.1\r\nHost:localhost\r\n\r\n"},
		{"empty key", "GET / HTTP/1.1\r\n: value\r\n\r\n"},
		{"bare LF", "GET / HTTP/1.1\r\nHost: a\nX: b\r\n\r\n"},
		{"invalid utf-8", "GET /\xff\xfe HTTP/1.1\r\n\r\n"},
		{"invalid utf-8 value", "GET / HTTP/1.1\r\nX: \xc3\x28\r\n\r\n"},
		{"no terminator", "GET / HTTP/1.1\r\n"},
	}

	for _, tc := range malformed {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := ParseHeaders([]byte(tc.Raw))
			require.ErrorIs(t, err, status.ErrMalformedRequest)
		})
	}
}

func generateHeaders(n int) (out []string) {
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("%s: some value", uniuri.New()))
	}

	return out
}

func generateRequest(path string, headers []string) string {
	return "GET " + path + " HTTP/1.1\r\n" + strings.Join(headers, "\r\n") + "\r\n\r\n"
}

func BenchmarkParseHeaders(b *testing.B) {
	b.Run("with 10 headers", func(b *testing.B) {
		data := []byte(generateRequest(strings.Repeat("a", 500), generateHeaders(10)))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = ParseHeaders(data)
		}
	})
}
