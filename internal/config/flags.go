package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads a configuration layer from args.
//
// A fresh flag set is used on every call, so loading the configuration more
// than once in a process is safe.
//
// Flags:
//
//	-profile             profile name (development, production)
//	-production          production mode (true/false)
//	-api-server-url      API base URL
//	-auth0-url           Auth0 tenant prefix
//	-auth0-domain        Auth0 tenant host
//	-auth0-audience      Auth0 API audience
//	-auth0-client-id     Auth0 client ID
//	-auth0-callback-url  Auth0 callback URL
//	-a                   server address in format [host]:[port]
//	-request-timeout     request timeout (e.g., "30s", "1m")
//	-shutdown-timeout    graceful shutdown timeout
//	-algorithms          accepted token algorithms, comma separated
//	-jwks-timeout        key set download timeout
//	-jwks-cache-ttl      key set cache lifetime
//	-c/-config           json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var serverAddress NetAddress

	fs := flag.NewFlagSet("coffee-shop", flag.ContinueOnError)

	fs.StringVar(&cfg.Profile, "profile", "", "Profile name (development, production)")
	fs.Var((*optionalBool)(&cfg.Environment.Production), "production", "Production mode")
	fs.Var(&optionalString{&cfg.Environment.APIServerURL}, "api-server-url", "API server base URL")
	fs.Var(&optionalString{&cfg.Environment.Auth0.URL}, "auth0-url", "Auth0 tenant prefix")
	fs.Var(&optionalString{&cfg.Environment.Auth0.Domain}, "auth0-domain", "Auth0 tenant host")
	fs.Var(&optionalString{&cfg.Environment.Auth0.Audience}, "auth0-audience", "Auth0 API audience")
	fs.Var(&optionalString{&cfg.Environment.Auth0.ClientID}, "auth0-client-id", "Auth0 client ID")
	fs.Var(&optionalString{&cfg.Environment.Auth0.CallbackURL}, "auth0-callback-url", "Auth0 callback URL")

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	fs.Var((*stringList)(&cfg.Auth.Algorithms), "algorithms", "Accepted token algorithms, comma separated")
	fs.DurationVar(&cfg.Auth.JWKSTimeout, "jwks-timeout", 0, "JWKS download timeout")
	fs.DurationVar(&cfg.Auth.JWKSCacheTTL, "jwks-cache-ttl", 0, "JWKS cache lifetime")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number is an integer in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// optionalBool is a boolean flag that records whether it was given at all.
// The zero value (empty string) means "not set".
type optionalBool string

func (b *optionalBool) String() string {
	if b == nil {
		return ""
	}
	return string(*b)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}

	*b = optionalBool(strconv.FormatBool(v))
	return nil
}

// IsBoolFlag allows "-production" without a value.
func (b *optionalBool) IsBoolFlag() bool {
	return true
}

// optionalString is a string flag that stays nil until it is given, so
// "-auth0-client-id=" is told apart from an absent flag.
type optionalString struct {
	value **string
}

func (s *optionalString) String() string {
	if s == nil || s.value == nil {
		return ""
	}
	return stringValue(*s.value)
}

func (s *optionalString) Set(v string) error {
	*s.value = stringPtr(v)
	return nil
}

// stringList is a comma separated list flag.
type stringList []string

func (l *stringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = (*l)[:0]
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}

	return nil
}
