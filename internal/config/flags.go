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

// parseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-driver storage driver (firebase or sql)
//	-firebase-url realtime database root URL
//	-d database DSN for the sql driver
//	-origin public origin for share links
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit share requests per IP per minute
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var driver, firebaseURL, databaseDSN string
	var publicOrigin, logLevel string
	var requestTimeout time.Duration
	var rateLimit int

	fs := flag.NewFlagSet("invites-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&driver, "driver", "", "Storage driver: firebase or sql")
	fs.StringVar(&firebaseURL, "firebase-url", "", "Realtime database URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&publicOrigin, "origin", "", "Public origin for share links")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Share requests per IP per minute")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:     logLevel,
			PublicOrigin: publicOrigin,
		},
		Storage: Storage{
			Driver:   driver,
			Firebase: Firebase{URL: firebaseURL},
			DB:       DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			ShareRateLimit: rateLimit,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Hosts other than "localhost" must be IP
// addresses.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
