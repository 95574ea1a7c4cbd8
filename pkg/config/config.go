package config

import (
	"os"
	"path/filepath"

	"github.com/user/supacheck/pkg/supabase"
	"gopkg.in/yaml.v3"
)

type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

// SupabaseConfig is the saved credential profile for the audited project.
type SupabaseConfig struct {
	URL         string `yaml:"url"`
	ServiceKey  string `yaml:"service_key"`
	AccessToken string `yaml:"access_token"`
	ProjectRef  string `yaml:"project_ref,omitempty"`
}

type Config struct {
	SelectedProvider string                    `yaml:"selected_provider"`
	SelectedModel    string                    `yaml:"selected_model"`
	Providers        map[string]ProviderConfig `yaml:"providers"`
	Supabase         SupabaseConfig            `yaml:"supabase"`
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".supacheck")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Return default config
		return &Config{
			SelectedProvider: "gemini",
			SelectedModel:    "gemini-pro",
			Providers:        make(map[string]ProviderConfig),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// 0600 permissions for security (api keys)
	return os.WriteFile(path, data, 0600)
}

func (c *Config) SetAPIKey(provider, key string) {
	p := c.Providers[provider]
	p.APIKey = key
	c.Providers[provider] = p
}

func (c *Config) GetAPIKey(provider string) string {
	return c.Providers[provider].APIKey
}

// Credentials merges the saved profile with environment fallbacks
// (SUPABASE_URL, SUPABASE_SERVICE_KEY, SUPABASE_ACCESS_TOKEN,
// SUPABASE_PROJECT_REF) into a credential bundle for a run.
func (c *Config) Credentials() supabase.Credentials {
	creds := supabase.Credentials{
		EndpointURL:   c.Supabase.URL,
		ServiceKey:    c.Supabase.ServiceKey,
		ManagementKey: c.Supabase.AccessToken,
		ProjectRef:    c.Supabase.ProjectRef,
	}
	if creds.EndpointURL == "" {
		creds.EndpointURL = os.Getenv("SUPABASE_URL")
	}
	if creds.ServiceKey == "" {
		creds.ServiceKey = os.Getenv("SUPABASE_SERVICE_KEY")
	}
	if creds.ManagementKey == "" {
		creds.ManagementKey = os.Getenv("SUPABASE_ACCESS_TOKEN")
	}
	if creds.ProjectRef == "" {
		creds.ProjectRef = os.Getenv("SUPABASE_PROJECT_REF")
	}
	return creds
}
