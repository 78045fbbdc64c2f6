package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// JSONConfig is the layout of the optional JSON config file. The top-level
// profile keys use the same names as the front-end environment object.
type JSONConfig struct {
	Production   *bool   `json:"production,omitempty"`
	APIServerURL *string `json:"apiServerUrl,omitempty"`

	// A key present with "" is an explicit empty value; an absent key is nil.
	Auth0 struct {
		URL         *string `json:"url,omitempty"`
		Domain      *string `json:"domain,omitempty"`
		Audience    *string `json:"audience,omitempty"`
		ClientID    *string `json:"clientId,omitempty"`
		CallbackURL *string `json:"callbackURL,omitempty"`
	} `json:"auth0"`

	Server struct {
		HTTPAddress     string   `json:"http_address,omitempty"`
		RequestTimeout  Duration `json:"request_timeout,omitempty"`
		ShutdownTimeout Duration `json:"shutdown_timeout,omitempty"`
	} `json:"server"`

	Auth struct {
		Algorithms   []string `json:"algorithms,omitempty"`
		JWKSTimeout  Duration `json:"jwks_timeout,omitempty"`
		JWKSCacheTTL Duration `json:"jwks_cache_ttl,omitempty"`
	} `json:"auth"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var production string
	if jsonCfg.Production != nil {
		production = strconv.FormatBool(*jsonCfg.Production)
	}

	cfg := &StructuredConfig{
		Environment: Environment{
			Production:   production,
			APIServerURL: jsonCfg.APIServerURL,
			Auth0: Auth0{
				URL:         jsonCfg.Auth0.URL,
				Domain:      jsonCfg.Auth0.Domain,
				Audience:    jsonCfg.Auth0.Audience,
				ClientID:    jsonCfg.Auth0.ClientID,
				CallbackURL: jsonCfg.Auth0.CallbackURL,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Auth: Auth{
			Algorithms:   jsonCfg.Auth.Algorithms,
			JWKSTimeout:  time.Duration(jsonCfg.Auth.JWKSTimeout),
			JWKSCacheTTL: time.Duration(jsonCfg.Auth.JWKSCacheTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
