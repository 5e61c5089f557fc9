package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/imaris-cli/internal/extract"
	"github.com/KaramelBytes/imaris-cli/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	InputDir            string   `mapstructure:"input_dir" yaml:"input_dir" validate:"required"`
	OutputWorkbook      string   `mapstructure:"output_workbook" yaml:"output_workbook" validate:"required,endswith=.xlsx"`
	LogPath             string   `mapstructure:"log_path" yaml:"log_path" validate:"required"`
	RecognizedVariables []string `mapstructure:"recognized_variables" yaml:"recognized_variables" validate:"required,min=1,dive,required"`
	Extensions          []string `mapstructure:"extensions" yaml:"extensions" validate:"required,min=1,dive,startswith=."`
	LogLevel            string   `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Summary             bool     `mapstructure:"summary" yaml:"summary"`
}

var validate = validator.New()

// Validate checks required fields and value formats.
func (c *Global) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// defaultPath is ~/.imaris/config.yaml.
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".imaris", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.imaris/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("IMARIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input_dir", "fichier_xlsx")
	v.SetDefault("output_workbook", "resultats_extraction.xlsx")
	v.SetDefault("log_path", "log_extraction.txt")
	v.SetDefault("recognized_variables", extract.DefaultVariables)
	v.SetDefault("extensions", []string{".xls"})
	v.SetDefault("log_level", "info")
	v.SetDefault("summary", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		p, err := defaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(p))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	for i, e := range c.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		c.Extensions[i] = e
	}
	return &c, nil
}
