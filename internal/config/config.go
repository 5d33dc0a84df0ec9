package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/russross/blockdown"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// If SetConfigFile was provided upstream it takes precedence and a
	// read failure is reported; the search paths are optional.
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "blockdown"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "blockdown"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: BLOCKDOWN_* (highest among these sources)
	v.SetEnvPrefix("blockdown")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A stylesheet only makes sense on a complete page.
	if strings.TrimSpace(v.GetString("page.css")) != "" {
		v.Set("page.enabled", true)
	}
	return nil
}

// CheckConfigValidity reports every invalid setting at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error
	if _, err := blockdown.ParseMode(v.GetString("mode")); err != nil {
		errs = append(errs, fmt.Errorf("mode: %w", err))
	}
	if strings.TrimSpace(v.GetString("serve.addr")) == "" {
		errs = append(errs, errors.New("serve.addr is required"))
	}
	if strings.TrimSpace(v.GetString("serve.root")) == "" {
		errs = append(errs, errors.New("serve.root is required"))
	}
	if v.GetInt64("serve.max_body") <= 0 {
		errs = append(errs, errors.New("serve.max_body must be greater than 0"))
	}
	return errors.Join(errs...)
}

// Mode returns the configured rendering mode.
func Mode(v *viper.Viper) (blockdown.Mode, error) {
	return blockdown.ParseMode(v.GetString("mode"))
}

// Renderer builds the HTML renderer described by the configuration.
func Renderer(v *viper.Viper) *blockdown.HTML {
	flags := blockdown.HTMLFlagsNone
	if v.GetBool("escape_content") {
		flags |= blockdown.EscapeContent
	}
	if v.GetBool("heading_ids") {
		flags |= blockdown.HeadingIDs
	}
	if v.GetBool("no_classes") {
		flags |= blockdown.NoClasses
	}
	if v.GetBool("page.enabled") {
		flags |= blockdown.CompletePage
	}

	params := blockdown.HTMLRendererParameters{
		HeadingIDPrefix: v.GetString("heading_id.prefix"),
		HeadingIDSuffix: v.GetString("heading_id.suffix"),
	}
	return blockdown.NewHTMLRendererWithParameters(flags, v.GetString("page.title"), v.GetString("page.css"), params)
}

// Extensions returns the pipeline stages selected by the configuration.
func Extensions(v *viper.Viper) blockdown.Extensions {
	ext := blockdown.CommonExtensions
	if v.GetBool("table_alignment") {
		ext |= blockdown.TableAlignment
	}
	return ext
}

// RenderOptions converts the configuration into options for blockdown.Run.
func RenderOptions(v *viper.Viper) ([]blockdown.Option, error) {
	mode, err := Mode(v)
	if err != nil {
		return nil, err
	}
	return []blockdown.Option{
		blockdown.WithRenderer(Renderer(v)),
		blockdown.WithExtensions(Extensions(v)),
		blockdown.WithMode(mode),
	}, nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "blockdown", "config.toml")
}
