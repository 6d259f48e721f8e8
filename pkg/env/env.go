// Package env reads raw environment variables for the few places that run
// before envconfig has loaded the full configuration.
package env

import "os"

// Get returns the value of key, or fallback when the variable is unset
// or empty.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
