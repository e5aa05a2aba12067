// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session-secret session and reset token signing secret
//	-session-store session store kind (cookie|redis)
//	-redis-address redis address in format host:port
//	-groq-api-key Groq API key
//	-mistral-api-key Mistral API key
//	-smtp-host SMTP relay host
//	-smtp-port SMTP relay port
//	-request-timeout inbound request timeout (e.g., "90s")
//	-provider-timeout outbound provider timeout (e.g., "60s")
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionSecret string
	var sessionStore string
	var redisAddress string
	var groqAPIKey string
	var mistralAPIKey string
	var smtpHost string
	var smtpPort int
	var requestTimeout time.Duration
	var providerTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session signing secret")
	fs.StringVar(&sessionStore, "session-store", "", "Session store: cookie or redis")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&groqAPIKey, "groq-api-key", "", "Groq API key")
	fs.StringVar(&mistralAPIKey, "mistral-api-key", "", "Mistral API key")
	fs.StringVar(&smtpHost, "smtp-host", "", "SMTP relay host")
	fs.IntVar(&smtpPort, "smtp-port", 0, "SMTP relay port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 90s)")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "AI provider timeout (e.g., 60s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSecret: sessionSecret,
			SessionStore:  sessionStore,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Redis: Redis{Address: redisAddress},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Groq:           Provider{APIKey: groqAPIKey},
			Mistral:        Provider{APIKey: mistralAPIKey},
			RequestTimeout: providerTimeout,
		},
		SMTP: SMTP{
			Host: smtpHost,
			Port: smtpPort,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost", an IP address or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
