package url

import (
	"fmt"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/netstr/config"
	"github.com/indigo-web/netstr/errors"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("no port no path", func(t *testing.T) {
		u, err := Split("http://example.com")
		require.NoError(t, err)
		require.Equal(t, URL{Scheme: "http", Host: "example.com", Port: 80, Path: "/"}, u)
	})

	t.Run("port path and fragment", func(t *testing.T) {
		u, err := Split("https://example.com:8443/a/b#frag")
		require.NoError(t, err)
		require.Equal(t, URL{Scheme: "https", Host: "example.com", Port: 8443, Path: "/a/b"}, u)
	})

	t.Run("default https port", func(t *testing.T) {
		u, err := Split("https://foo/bar")
		require.NoError(t, err)
		require.Equal(t, "foo", u.Host)
		require.Equal(t, "/bar", u.Path)
		require.Equal(t, uint16(443), u.Port)
	})

	t.Run("scheme is lowercased", func(t *testing.T) {
		u, err := Split("HTTPS://Example.COM/Some/Path")
		require.NoError(t, err)
		require.Equal(t, "https", u.Scheme)
		require.Equal(t, "Example.COM", u.Host)
		require.Equal(t, "/Some/Path", u.Path)
		require.Equal(t, uint16(443), u.Port)
	})

	t.Run("unknown scheme without port", func(t *testing.T) {
		u, err := Split("ftp://files.example.com/pub")
		require.NoError(t, err)
		require.Equal(t, "ftp", u.Scheme)
		require.Zero(t, u.Port)
	})

	t.Run("unknown scheme with port", func(t *testing.T) {
		u, err := Split("gopher://hole:70")
		require.NoError(t, err)
		require.Equal(t, uint16(70), u.Port)
		require.Equal(t, "/", u.Path)
	})

	t.Run("explicit zero port falls back to default", func(t *testing.T) {
		u, err := Split("http://host:0/")
		require.NoError(t, err)
		require.Equal(t, uint16(80), u.Port)
	})

	t.Run("empty port", func(t *testing.T) {
		u, err := Split("http://host:/x")
		require.NoError(t, err)
		require.Equal(t, "host", u.Host)
		require.Equal(t, uint16(80), u.Port)
	})

	t.Run("port with trailing garbage", func(t *testing.T) {
		u, err := Split("http://host:81abc/x")
		require.NoError(t, err)
		require.Equal(t, uint16(81), u.Port)
	})

	t.Run("non-numeric port", func(t *testing.T) {
		u, err := Split("https://host:abc")
		require.NoError(t, err)
		require.Equal(t, uint16(443), u.Port)
	})

	t.Run("port with leading whitespace and sign", func(t *testing.T) {
		for raw, port := range map[string]uint16{
			"http://h: 8080/":  8080,
			"http://h:\t\n81":  81,
			"http://h:+8443/x": 8443,
			"http://h: +9000":  9000,
			"http://h:-0/":     80,
			"https://h: /":     443,
			"https://h:+":      443,
			"http://h:++1/":    80,
		} {
			u, err := Split(raw)
			require.NoError(t, err, raw)
			require.Equal(t, "h", u.Host, raw)
			require.Equal(t, port, u.Port, raw)
		}
	})

	t.Run("colon in path is not a port", func(t *testing.T) {
		u, err := Split("http://host/a:b")
		require.NoError(t, err)
		require.Equal(t, "host", u.Host)
		require.Equal(t, uint16(80), u.Port)
		require.Equal(t, "/a:b", u.Path)
	})

	t.Run("query stays in path", func(t *testing.T) {
		u, err := Split("http://host/search?q=1#top")
		require.NoError(t, err)
		require.Equal(t, "/search?q=1", u.Path)
	})

	t.Run("fragment right after slash", func(t *testing.T) {
		u, err := Split("http://host/#frag")
		require.NoError(t, err)
		require.Equal(t, "/", u.Path)
	})

	t.Run("fragment without path stays in host", func(t *testing.T) {
		u, err := Split("http://host#frag")
		require.NoError(t, err)
		require.Equal(t, "host#frag", u.Host)
		require.Equal(t, "/", u.Path)
	})

	t.Run("empty scheme and host", func(t *testing.T) {
		u, err := Split(":///")
		require.NoError(t, err)
		require.Empty(t, u.Scheme)
		require.Empty(t, u.Host)
		require.Zero(t, u.Port)
		require.Equal(t, "/", u.Path)
	})

	t.Run("only the first delimiter counts", func(t *testing.T) {
		u, err := Split("http://proxy/https://target")
		require.NoError(t, err)
		require.Equal(t, "proxy", u.Host)
		require.Equal(t, "/https://target", u.Path)
	})
}

func TestSplit_Errors(t *testing.T) {
	t.Run("no scheme delimiter", func(t *testing.T) {
		for _, raw := range []string{"", "example.com", "http:/example.com", "http//x", "mailto:me@x"} {
			_, err := Split(raw)
			require.ErrorIs(t, err, errors.ErrMalformedURL, raw)
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		_, err := Split("http://host:65536/")
		require.ErrorIs(t, err, errors.ErrBadPort)

		_, err = Split("http://host:99999999999999999999")
		require.ErrorIs(t, err, errors.ErrBadPort)
	})

	t.Run("negative port", func(t *testing.T) {
		_, err := Split("http://host:-1/")
		require.ErrorIs(t, err, errors.ErrBadPort)
	})

	t.Run("highest port", func(t *testing.T) {
		u, err := Split("http://host:65535")
		require.NoError(t, err)
		require.Equal(t, uint16(65535), u.Port)
	})
}

func TestSplitWith(t *testing.T) {
	cfg := config.URL{DefaultPorts: map[string]uint16{"ws": 80, "wss": 443}}

	u, err := SplitWith("WSS://chat.example.com/socket", cfg)
	require.NoError(t, err)
	require.Equal(t, uint16(443), u.Port)

	u, err = SplitWith("http://example.com", cfg)
	require.NoError(t, err)
	require.Zero(t, u.Port)

	t.Run("reassemble with the same table", func(t *testing.T) {
		u, err := SplitWith("wss://chat:443/x", cfg)
		require.NoError(t, err)
		require.True(t, u.DefaultPortWith(cfg))
		require.False(t, u.DefaultPort())
		require.Equal(t, "wss://chat/x", u.StringWith(cfg))
		require.Equal(t, "wss://chat:443/x", u.String())

		again, err := SplitWith(u.StringWith(cfg), cfg)
		require.NoError(t, err)
		require.Equal(t, u, again)
	})
}

func TestSplitBytes(t *testing.T) {
	raw := []byte("HTTP://Host:8080/Path#frag")
	original := string(raw)

	u, err := SplitBytes(raw)
	require.NoError(t, err)
	require.Equal(t, original, string(raw), "input must not be mutated")

	for i := range raw {
		raw[i] = 'x'
	}

	require.Equal(t, URL{Scheme: "http", Host: "Host", Port: 8080, Path: "/Path"}, u)

	_, err = SplitBytes([]byte("no delimiter"))
	require.ErrorIs(t, err, errors.ErrMalformedURL)
}

func TestURL_String(t *testing.T) {
	t.Run("default port is omitted", func(t *testing.T) {
		u := URL{Scheme: "https", Host: "example.com", Port: 443, Path: "/a"}
		require.Equal(t, "https://example.com/a", u.String())
	})

	t.Run("custom port", func(t *testing.T) {
		u := URL{Scheme: "http", Host: "example.com", Port: 8080, Path: "/"}
		require.Equal(t, "http://example.com:8080/", u.String())
	})

	t.Run("unknown port", func(t *testing.T) {
		u := URL{Scheme: "ftp", Host: "example.com"}
		require.Equal(t, "ftp://example.com/", u.String())
	})
}

func TestURL_Addr(t *testing.T) {
	u, err := Split("https://example.com/")
	require.NoError(t, err)
	require.Equal(t, "example.com:443", u.Addr())
	require.True(t, u.DefaultPort())

	u, err = Split("https://example.com:8443/")
	require.NoError(t, err)
	require.Equal(t, "example.com:8443", u.Addr())
	require.False(t, u.DefaultPort())
}

func TestSplit_Reassemble(t *testing.T) {
	schemes := []string{"http", "https", "HTTP", "ws", "Ftp"}
	ports := []string{"", ":1", ":80", ":443", ":8080", ":65535"}
	paths := []string{"", "/", "/a", "/a/b/c", "/q?x=1"}
	fragments := []string{"", "#", "#frag"}

	for i := 0; i < 200; i++ {
		host := uniuri.NewLen(1 + i%20)
		raw := fmt.Sprintf("%s://%s%s%s",
			schemes[i%len(schemes)], host, ports[i%len(ports)], paths[i%len(paths)],
		)
		if paths[i%len(paths)] != "" {
			raw += fragments[i%len(fragments)]
		}

		u, err := Split(raw)
		require.NoError(t, err, raw)
		require.Equal(t, host, u.Host, raw)
		require.NotContains(t, u.Path, "#", raw)

		again, err := Split(u.String())
		require.NoError(t, err, raw)
		require.Equal(t, u, again, raw)
	}
}
