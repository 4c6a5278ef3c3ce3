package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// configFile is an explicit config path set with --config.
var configFile string

// SetConfigFile points LoadConfig at one specific file instead of the
// search paths.
func SetConfigFile(path string) {
	configFile = path
}

// Config holds the application configuration
type Config struct {
	DatabasePath string
	Provider     string
	DatabaseURL  string
	ListenAddr   string
	TemplateDir  string
	Telemetry    bool
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".classql")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "classql"))
	}

	// Set environment variable prefix
	v.SetEnvPrefix("CLASSQL")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("database_path", "classql.db")
	v.SetDefault("provider", "sqlite")
	v.SetDefault("listen_addr", "0.0.0.0:3000")
	v.SetDefault("telemetry", false)

	// Try to read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		DatabasePath: v.GetString("database_path"),
		Provider:     v.GetString("provider"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ListenAddr:   v.GetString("listen_addr"),
		TemplateDir:  v.GetString("template_dir"),
		Telemetry:    v.GetBool("telemetry"),
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("database_path", cfg.DatabasePath)
	viper.Set("provider", cfg.Provider)
	viper.Set("listen_addr", cfg.ListenAddr)
	viper.Set("template_dir", cfg.TemplateDir)
	viper.Set("telemetry", cfg.Telemetry)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "classql")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	file := filepath.Join(configPath, ".classql.yaml")
	return viper.WriteConfigAs(file)
}
