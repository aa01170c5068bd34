package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyAPIURL         = "api.url"
	KeyAPIEmail       = "api.email"
	KeyAPIPassword    = "api.password"
	KeyAPIAppToken    = "api.app_token"
	KeyReportMaxPages = "report.max_pages"
	KeyReportTimeout  = "report.timeout"
	KeyReportRate     = "report.requests_per_second"

	// EnvPrefix makes every key reachable through the environment, e.g.
	// HUBSTAFF_API_APP_TOKEN for api.app_token.
	EnvPrefix = "HUBSTAFF"
)

type Config struct {
	API    APIConfig    `mapstructure:"api" validate:"required"`
	Report ReportConfig `mapstructure:"report"`
}

type APIConfig struct {
	URL      string `mapstructure:"url" validate:"required,url"`
	Email    string `mapstructure:"email" validate:"required,email"`
	Password string `mapstructure:"password" validate:"required"`
	AppToken string `mapstructure:"app_token" validate:"required"`
}

type ReportConfig struct {
	// MaxPages bounds a single pagination run so a server that never omits
	// its cursor cannot stall the process indefinitely.
	MaxPages int `mapstructure:"max_pages" validate:"gte=1"`
	// Timeout applies to each individual HTTP call.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// RequestsPerSecond throttles outbound API calls.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
}

// SetDefaults registers defaults and environment bindings on the global Viper.
func SetDefaults() {
	setDefaults(viper.GetViper())
	bindEnv(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it.
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# hbsreport configuration
# Credentials may also come from the environment:
#   HUBSTAFF_API_URL, HUBSTAFF_API_EMAIL, HUBSTAFF_API_PASSWORD, HUBSTAFF_API_APP_TOKEN
api:
  url: "https://api.hubstaff.com"
  email: ""
  password: ""
  app_token: ""

report:
  max_pages: 1000
  timeout: 10s
  requests_per_second: 5
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, "https://api.hubstaff.com")
	v.SetDefault(KeyAPIEmail, "")
	v.SetDefault(KeyAPIPassword, "")
	v.SetDefault(KeyAPIAppToken, "")
	v.SetDefault(KeyReportMaxPages, 1000)
	v.SetDefault(KeyReportTimeout, 10*time.Second)
	v.SetDefault(KeyReportRate, 5.0)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
