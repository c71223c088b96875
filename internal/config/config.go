package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "GRIDPATH"

	API_ADDR              = "Api_Addr"
	MONITORING_ADDR       = "Monitoring_Addr"
	LOG_LEVEL             = "Log_Level"
	LOG_FORMAT            = "Log_Format"
	DEFAULT_STRATEGY      = "Default_Strategy"
	DEFAULT_CONNECTIVITY  = "Default_Connectivity"
	DEFAULT_COST_MODEL    = "Default_Cost_Model"
	MAX_EXPANSIONS        = "Search_Max_Expansions"
	MAX_CELLS             = "Grid_Max_Cells"
	MAX_REQUEST_BYTES     = "Http_Max_Request_Bytes"
	HTTP_SHUTDOWN_TIMEOUT = "Http_Shutdown_Timeout"
)

type Config struct {
	ApiAddr             string        `validate:"required"`
	MonitoringAddr      string        `validate:"required"`
	LogLevel            string        `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat           string        `validate:"oneof=json text"`
	DefaultStrategy     string        `validate:"required"`
	DefaultConnectivity int           `validate:"oneof=4 8"`
	DefaultCostModel    string        `validate:"omitempty,oneof=destination exp div"`
	MaxExpansions       int           `validate:"gte=0"`
	MaxCells            int           `validate:"gt=0"`
	MaxRequestBytes     int64         `validate:"gt=0"`
	HttpShutdownTimeout time.Duration `validate:"gt=0"`
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", API_ADDR, c.ApiAddr)
	fmt.Fprintf(&b, "%s: %s\n", MONITORING_ADDR, c.MonitoringAddr)
	fmt.Fprintf(&b, "%s: %s\n", LOG_LEVEL, c.LogLevel)
	fmt.Fprintf(&b, "%s: %s\n", LOG_FORMAT, c.LogFormat)
	fmt.Fprintf(&b, "%s: %s\n", DEFAULT_STRATEGY, c.DefaultStrategy)
	fmt.Fprintf(&b, "%s: %d\n", DEFAULT_CONNECTIVITY, c.DefaultConnectivity)
	fmt.Fprintf(&b, "%s: %s\n", DEFAULT_COST_MODEL, c.DefaultCostModel)
	fmt.Fprintf(&b, "%s: %d\n", MAX_EXPANSIONS, c.MaxExpansions)
	fmt.Fprintf(&b, "%s: %d\n", MAX_CELLS, c.MaxCells)
	fmt.Fprintf(&b, "%s: %d\n", MAX_REQUEST_BYTES, c.MaxRequestBytes)
	fmt.Fprintf(&b, "%s: %s", HTTP_SHUTDOWN_TIMEOUT, c.HttpShutdownTimeout)
	return b.String()
}

// GetConfig reads the configuration from GRIDPATH_* environment variables
// on top of the defaults and validates the result. Durations use Go syntax
// ("5s", "1m30s").
func GetConfig() (*Config, error) {
	options := viper.New()

	options.SetDefault(API_ADDR, ":8080")
	options.SetDefault(MONITORING_ADDR, ":10000")
	options.SetDefault(LOG_LEVEL, "info")
	options.SetDefault(LOG_FORMAT, "json")
	options.SetDefault(DEFAULT_STRATEGY, "dijkstra")
	options.SetDefault(DEFAULT_CONNECTIVITY, 4)
	options.SetDefault(DEFAULT_COST_MODEL, "destination")
	options.SetDefault(MAX_EXPANSIONS, 0)
	options.SetDefault(MAX_CELLS, 1024*1024)
	options.SetDefault(MAX_REQUEST_BYTES, 8*1024*1024)
	options.SetDefault(HTTP_SHUTDOWN_TIMEOUT, 5*time.Second)
	options.SetEnvPrefix(ENV_PREFIX)
	options.AutomaticEnv()

	cfg := &Config{
		ApiAddr:             options.GetString(API_ADDR),
		MonitoringAddr:      options.GetString(MONITORING_ADDR),
		LogLevel:            strings.ToLower(options.GetString(LOG_LEVEL)),
		LogFormat:           strings.ToLower(options.GetString(LOG_FORMAT)),
		DefaultStrategy:     strings.ToLower(options.GetString(DEFAULT_STRATEGY)),
		DefaultConnectivity: options.GetInt(DEFAULT_CONNECTIVITY),
		DefaultCostModel:    strings.ToLower(options.GetString(DEFAULT_COST_MODEL)),
		MaxExpansions:       options.GetInt(MAX_EXPANSIONS),
		MaxCells:            options.GetInt(MAX_CELLS),
		MaxRequestBytes:     options.GetInt64(MAX_REQUEST_BYTES),
		HttpShutdownTimeout: options.GetDuration(HTTP_SHUTDOWN_TIMEOUT),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
