package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Transport mode selectors for the MCP side of the server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

// flagKeys maps cobra flag names to their viper keys.
var flagKeys = map[string]string{
	"api-base":    KeyAPIBase,
	"api-timeout": KeyAPITimeout,
	"host":        KeyHost,
	"port":        KeyPort,
	"transport":   KeyTransport,
	"oauth":       KeyOAuthEnabled,
	"public-url":  KeyPublicBaseURL,
	"log-level":   KeyLogLevel,
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		for flag, key := range flagKeys {
			if f := root.PersistentFlags().Lookup(flag); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIBase, "http://127.0.0.1:8083")
	viper.SetDefault(KeyAPITimeout, "30s")
	viper.SetDefault(KeyHost, "127.0.0.1")
	viper.SetDefault(KeyPort, 8084)
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyOAuthEnabled, true)
	viper.SetDefault(KeyLogLevel, "info")
}

func APIBase() string           { return viper.GetString(KeyAPIBase) }
func APITimeout() time.Duration { return viper.GetDuration(KeyAPITimeout) }
func Host() string              { return viper.GetString(KeyHost) }
func Port() int                 { return viper.GetInt(KeyPort) }
func Transport() string         { return viper.GetString(KeyTransport) }
func OAuthEnabled() bool        { return viper.GetBool(KeyOAuthEnabled) }
func LogLevel() string          { return viper.GetString(KeyLogLevel) }

// PublicBaseURL is the externally visible base URL used when constructing
// discovery documents. Falls back to the bind host/port when unset.
func PublicBaseURL() string {
	if url := viper.GetString(KeyPublicBaseURL); url != "" {
		return url
	}
	return fmt.Sprintf("http://%s:%d", Host(), Port())
}
