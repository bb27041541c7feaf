package appconfig

import (
	"fmt"
	"strings"
)

type Config struct {
	DefaultRegistry string `mapstructure:"default_registry"`
	Insecure        bool   `mapstructure:"insecure"`
	Jobs            int    `mapstructure:"jobs"`
	Verbose         bool   `mapstructure:"verbose"`
}

// Override takes a reference and overrides it by prepending the default
// registry, unless the reference already names a registry.
func (c *Config) Override(ref string) string {
	if c.DefaultRegistry == "" || hasRegistry(ref) {
		return ref
	}
	return fmt.Sprintf("%s/%s", c.DefaultRegistry, ref)
}

// hasRegistry reports whether the first path component of ref names a
// registry host rather than a namespace. Same heuristic as docker: a host
// contains a dot or a port, or is localhost.
func hasRegistry(ref string) bool {
	first, _, found := strings.Cut(ref, "/")
	if !found {
		return false
	}
	return strings.ContainsAny(first, ".:") || first == "localhost"
}
