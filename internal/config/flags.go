package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from the global flag set.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (PostgreSQL on the server, SQLite file on the client)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token lifetime (e.g., "1h", "30m")
//	-password-hash-iterations PBKDF2 rounds for new password hashes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-rate-limit /auth requests per second per client
//	-auth-rate-burst /auth burst size
//	-adapter-address simulator API address used by the client
//	-session-check-interval client session expiry check period
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var hashIterations int
	var requestTimeout time.Duration
	var authRateLimit float64
	var authRateBurst int
	var adapterAddress string
	var sessionCheckInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.IntVar(&hashIterations, "password-hash-iterations", 0, "PBKDF2 iterations for password hashes")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&authRateLimit, "auth-rate-limit", 0, "Allowed /auth requests per second per client")
	flag.IntVar(&authRateBurst, "auth-rate-burst", 0, "Burst size for /auth requests")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Simulator API address")
	flag.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session expiry check interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:           tokenSignKey,
			TokenIssuer:            tokenIssuer,
			TokenDuration:          tokenDuration,
			PasswordHashIterations: hashIterations,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AuthRateLimit:  authRateLimit,
			AuthRateBurst:  authRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SessionCheckInterval: sessionCheckInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The port must be positive and the host must be an IP
// address or "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
