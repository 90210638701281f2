// Package url decomposes URLs of the form scheme://host[:port][/path][#fragment]
// into their structural parts. It doesn't attempt to implement the full URI grammar:
// query strings are left inside the path, while userinfo, IPv6
// literals and percent-encoding aren't recognized.
package url

import (
	"strconv"
	"strings"

	"github.com/indigo-web/netstr/config"
	"github.com/indigo-web/netstr/errors"
	"github.com/indigo-web/netstr/internal/ascii"
	"github.com/indigo-web/netstr/internal/cutbyte"
	"github.com/indigo-web/netstr/strutil"
	"github.com/indigo-web/utils/uf"
)

const schemeDelimiter = "://"

const defaultPath = "/"

var defaultConfig = config.Default().URL

// URL is a split URL. All the fields are independent of the input they were split from.
type URL struct {
	// Scheme is always lower-cased.
	Scheme string
	Host   string
	// Port is either explicitly specified one, the scheme's default or 0 if neither
	// is known.
	Port uint16
	// Path always starts with a slash. Fragment is never included.
	Path string
}

// Split splits the URL using default scheme ports (http is 80, https is 443).
func Split(raw string) (URL, error) {
	return SplitWith(raw, defaultConfig)
}

// SplitBytes behaves exactly as Split does, but for a byte buffer. The buffer is neither
// modified nor referenced by the result, so it can be reused right after the call.
func SplitBytes(raw []byte) (URL, error) {
	u, err := Split(uf.B2S(raw))
	if err != nil {
		return URL{}, err
	}

	u.Scheme = strings.Clone(u.Scheme)
	u.Host = strings.Clone(u.Host)
	u.Path = strings.Clone(u.Path)

	return u, nil
}

// SplitWith splits the URL, taking default ports from the passed config.
func SplitWith(raw string, cfg config.URL) (u URL, err error) {
	delim := strings.Index(raw, schemeDelimiter)
	if delim == -1 {
		return u, errors.ErrMalformedURL
	}

	u.Scheme = ascii.ToLower(raw[:delim])
	rest := raw[delim+len(schemeDelimiter):]

	hostport := rest
	u.Path = defaultPath
	if slash := strings.IndexByte(rest, '/'); slash != -1 {
		hostport = rest[:slash]
		u.Path = cutbyte.Before(rest[slash:], '#')
	}

	host, port, found := cutbyte.Cut(hostport, ':')
	u.Host = host
	if found {
		if u.Port, err = parsePort(port); err != nil {
			return URL{}, err
		}
	}

	if u.Port == 0 {
		u.Port = cfg.PortFor(u.Scheme)
	}

	return u, nil
}

// parsePort follows atoi: leading whitespace and a single sign are skipped, then
// decimal digits are consumed up to the first non-digit. No digits at all result in 0.
// Negative ports are out of range.
func parsePort(str string) (uint16, error) {
	str = strutil.LStripString(str)
	negative := false
	if len(str) > 0 && (str[0] == '+' || str[0] == '-') {
		negative = str[0] == '-'
		str = str[1:]
	}

	var port uint32

	for i := 0; i < len(str); i++ {
		c := str[i]
		if c < '0' || c > '9' {
			break
		}

		port = port*10 + uint32(c-'0')
		if port > 0xFFFF {
			return 0, errors.ErrBadPort
		}
	}

	if negative && port != 0 {
		return 0, errors.ErrBadPort
	}

	return uint16(port), nil
}

// Addr returns host:port pair, ready to be dialed.
func (u URL) Addr() string {
	return u.Host + ":" + strconv.FormatUint(uint64(u.Port), 10)
}

// DefaultPort tells whether the port is the default one for the scheme. Only the
// built-in defaults are considered; see DefaultPortWith for custom tables.
func (u URL) DefaultPort() bool {
	return u.DefaultPortWith(defaultConfig)
}

// DefaultPortWith tells whether the port is the scheme's default in the passed config.
func (u URL) DefaultPortWith(cfg config.URL) bool {
	return u.Port == cfg.PortFor(u.Scheme)
}

// String assembles the URL back. The port is omitted if it's unknown or the built-in
// default one.
func (u URL) String() string {
	return u.StringWith(defaultConfig)
}

// StringWith assembles the URL back, omitting the port if it's unknown or the default
// one in the passed config.
func (u URL) StringWith(cfg config.URL) string {
	var b strings.Builder
	b.Grow(len(u.Scheme) + len(schemeDelimiter) + len(u.Host) + len(":65535") + len(u.Path))
	b.WriteString(u.Scheme)
	b.WriteString(schemeDelimiter)
	b.WriteString(u.Host)

	if u.Port != 0 && !u.DefaultPortWith(cfg) {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(u.Port), 10))
	}

	if len(u.Path) == 0 {
		b.WriteString(defaultPath)
	} else {
		b.WriteString(u.Path)
	}

	return b.String()
}
