package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-auth-token shared authorization secret
//	-log-level log level (debug, info, warn, error)
//	-password-encoding plain or bcrypt
//	-noop-as-success report zero-modified writes as success
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-storage store driver (mongo, postgres, sqlite)
//	-store-timeout bound on each store round trip
//	-mongo-uri MongoDB connection string
//	-mongo-db MongoDB database name
//	-mongo-collection MongoDB collection name
//	-d SQL database DSN
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var authToken, logLevel, passwordEncoding string
	var noopAsSuccess bool
	var requestTimeout, shutdownTimeout, storeTimeout time.Duration
	var driver, mongoURI, mongoDB, mongoCollection, databaseDSN string
	var jsonConfigPath string

	fs := flag.NewFlagSet("user-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&authToken, "auth-token", "", "Shared authorization secret")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&passwordEncoding, "password-encoding", "", "Password encoding (plain, bcrypt)")
	fs.BoolVar(&noopAsSuccess, "noop-as-success", false, "Report writes that modified nothing as success")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&driver, "storage", "", "Store driver (mongo, postgres, sqlite)")
	fs.DurationVar(&storeTimeout, "store-timeout", 0, "Timeout of a single store round trip")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&mongoCollection, "mongo-collection", "", "MongoDB collection name")
	fs.StringVar(&databaseDSN, "d", "", "SQL database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthorizationToken: authToken,
			LogLevel:           logLevel,
			PasswordEncoding:   passwordEncoding,
			NoopAsSuccess:      noopAsSuccess,
		},
		Storage: Storage{
			Driver:  driver,
			Timeout: storeTimeout,
			Mongo: Mongo{
				URI:        mongoURI,
				Database:   mongoDB,
				Collection: mongoCollection,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
