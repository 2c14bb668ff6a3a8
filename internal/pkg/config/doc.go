// Package config provides functionality for loading and managing application configuration.
//
// Settings are assembled from built-in defaults, an optional config file and
// PACKED_AES_* environment variables, then validated before use.
package config
