package config

import (
	"github.com/indigo-web/utils/strcomp"
)

type (
	URL struct {
		// DefaultPorts is consulted whenever a URL carries no explicit port (or an explicit
		// zero one). Keys are matched case-insensitively. Schemes missing here resolve to
		// port 0, which is how callers learn the port is unknown.
		DefaultPorts map[string]uint16
	}

	Hex struct {
		// Strict makes the decoder reject characters outside 0-9, a-f and A-F instead of
		// silently decoding them as zero nibbles.
		Strict bool `test:"nullable"`
	}
)

// PortFor returns the default port for the scheme, or 0 if the scheme is unknown.
func (u URL) PortFor(scheme string) uint16 {
	if port, found := u.DefaultPorts[scheme]; found {
		return port
	}

	for key, port := range u.DefaultPorts {
		if strcomp.EqualFold(key, scheme) {
			return port
		}
	}

	return 0
}

// Config holds the tunables of the package set. Modify the defaults returned via Default()
// instead of initializing it manually, as zero values may disable features silently.
type Config struct {
	URL URL
	Hex Hex
}

// Default returns default config.
func Default() *Config {
	return &Config{
		URL: URL{
			DefaultPorts: map[string]uint16{
				"http":  80,
				"https": 443,
			},
		},
		Hex: Hex{
			// invalid digits decode as zero nibbles unless asked otherwise
			Strict: false,
		},
	}
}
