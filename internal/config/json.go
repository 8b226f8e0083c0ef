package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file format.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		PasswordHashIterations int      `json:"password_hash_iterations"`
		Version                string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthRateLimit  float64  `json:"auth_rate_limit"`
		AuthRateBurst  int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionCheckInterval Duration `json:"session_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			TokenDuration:          time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashIterations: jsonCfg.App.PasswordHashIterations,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AuthRateLimit:  jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:  jsonCfg.Server.AuthRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionCheckInterval: time.Duration(jsonCfg.Workers.SessionCheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from strings like "1h" or
// "30s" as well as from plain nanosecond numbers.
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
