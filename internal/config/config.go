// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the code
// review service. It is populated by merging environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and Redis settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the LLM provider credentials and the outbound timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// SMTP holds the outgoing mail relay settings.
	SMTP SMTP `envPrefix:"SMTP_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Session store kinds accepted by App.SessionStore.
const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

// App holds application-level settings.
type App struct {
	// SessionSecret signs session cookies and password reset tokens.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionStore selects where sessions live: "cookie" or "redis".
	// Env: APP_SESSION_STORE
	SessionStore string `env:"SESSION_STORE"`

	// SessionDuration is the lifetime of a session.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SecureCookie marks the session cookie Secure (HTTPS only).
	// Env: APP_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// TokenIssuer is the "iss" claim of session and reset tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// OTPTTL is how long an emailed passcode stays valid.
	// Env: APP_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`

	// ResetTokenTTL is how long a reset token issued after OTP verification
	// stays valid.
	// Env: APP_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// LogLevel is the minimal zerolog level (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// DSN selects the backend by scheme: "postgres://" or "postgresql://"
	// opens PostgreSQL through pgx, anything else (optionally prefixed with
	// "sqlite://") is a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the Redis session store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds settings of the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request. It must exceed
	// Adapter.RequestTimeout so provider errors reach the client.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds LLM provider settings. A provider without an API key is not
// registered.
type Adapter struct {
	Groq    Provider `envPrefix:"GROQ_"`
	Mistral Provider `envPrefix:"MISTRAL_"`

	// RequestTimeout bounds every outbound provider call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Provider holds the credentials and endpoint of one LLM provider.
type Provider struct {
	// Env: ADAPTER_<NAME>_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_<NAME>_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// SMTP holds the outgoing mail relay settings. An empty Host disables mail.
type SMTP struct {
	// Env: SMTP_HOST
	Host string `env:"HOST"`
	// Env: SMTP_PORT
	Port int `env:"PORT"`
	// Username authenticates with PLAIN auth and is the default sender.
	// Env: SMTP_USERNAME
	Username string `env:"USERNAME"`
	// Env: SMTP_PASSWORD
	Password string `env:"PASSWORD"`
	// From overrides the sender address.
	// Env: SMTP_FROM
	From string `env:"FROM"`
}

// Workers holds background worker settings.
type Workers struct {
	// OTPCleanupInterval is the period of the expired passcode sweep.
	// Env: WORKERS_OTP_CLEANUP_INTERVAL
	OTPCleanupInterval time.Duration `env:"OTP_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration.
//
// Sources in priority order (the first non-zero value of a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
