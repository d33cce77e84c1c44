// Package config defines the application configuration structures and the
// loader that populates them from defaults, an optional config file, and
// environment variables. Configuration is loaded once at startup and treated
// as read-only afterwards.
package config
