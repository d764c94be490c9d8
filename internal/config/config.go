package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Reports ReportsConfig `yaml:"reports" envconfig:"REPORTS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// InputConfig describes the source dataset file
type InputConfig struct {
	File      string `yaml:"file" envconfig:"FILE"`
	Encoding  string `yaml:"encoding" envconfig:"ENCODING"`
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER"`
}

// ReportsConfig controls report generation
type ReportsConfig struct {
	TopN         int  `yaml:"top_n" envconfig:"TOP_N"`
	ExcelBOM     bool `yaml:"excel_bom" envconfig:"EXCEL_BOM"`
	WriteSeries  bool `yaml:"write_series" envconfig:"WRITE_SERIES"`
	SummaryJSON  bool `yaml:"summary_json" envconfig:"SUMMARY_JSON"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables take precedence over the file.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = fileCfg
	}

	if err := envconfig.Process("RETAIL", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file on top of defaults
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Reports.TopN <= 0 {
		return fmt.Errorf("reports top_n must be positive, got %d", c.Reports.TopN)
	}

	if len(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got %q", c.Input.Delimiter)
	}

	if _, err := ResolveEncoding(c.Input.Encoding); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		c.Logging.Format = "json"
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "both"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/analyzer.log"
	}

	return nil
}

// findConfigFile returns the path to the config file, if one exists
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Encoding:  "windows-1252",
			Delimiter: ",",
		},
		Reports: ReportsConfig{
			TopN:        5,
			ExcelBOM:    true,
			WriteSeries: true,
			SummaryJSON: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/analyzer.log",
		},
		Paths: PathsConfig{
			ReportsDir: "data/reports",
			LogsDir:    "logs",
		},
	}
}
