package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const DefaultFile = "swagclient.yaml"

type Config struct {
	Spec                  string         `koanf:"spec"`
	OutputDir             string         `koanf:"output-dir"`
	Templates             TemplateConfig `koanf:"templates"`
	IncludeTags           []string       `koanf:"include-tags"`
	IgnoreUnusedModels    bool           `koanf:"ignore-unused-models"`
	TypeOverrideExtension string         `koanf:"type-override-extension"`
	OutputExtension       string         `koanf:"output-extension"`
	Fetch                 FetchConfig    `koanf:"fetch"`
	DryRun                bool           `koanf:"dry-run"`
}

type TemplateConfig struct {
	Dir string `koanf:"dir"`
}

type FetchConfig struct {
	Timeout time.Duration `koanf:"timeout"`
	Retries int           `koanf:"retries"`
}

func defaults() map[string]any {
	return map[string]any{
		"ignore-unused-models":    true,
		"type-override-extension": "x-type",
		"output-extension":        "ts",
		"fetch.timeout":           20 * time.Second,
		"fetch.retries":           3,
	}
}

// BindCommonFlags binds the flags shared by every command that reads a document.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+")")
	flags.StringP("spec", "s", "", "Swagger 2.0 document path or http(s) URL")
	flags.StringSlice("include-tags", nil, "Tags to include (exclusive)")
	flags.Bool("ignore-unused-models", true, "Drop models not used by any included service")
	flags.String("type-override-extension", "", "Vendor extension holding explicit type overrides (default: x-type)")
	flags.Duration("fetch-timeout", 0, "Timeout for fetching a remote document (default: 20s)")
	flags.Int("fetch-retries", 0, "Retries for fetching a remote document (default: 3)")
}

// BindGenerateFlags binds the flags that only affect rendering.
func BindGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("output-dir", "o", "", "Output directory for generated files")
	flags.String("templates", "", "Custom templates directory")
	flags.String("output-extension", "", "Extension of generated files (default: ts)")
	flags.Bool("dry-run", false, "Print output without writing files")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.IncludeTags = splitTags(cfg.IncludeTags)
	cfg.OutputExtension = strings.TrimPrefix(cfg.OutputExtension, ".")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitTags flattens comma separated entries.
func splitTags(tags []string) []string {
	var out []string
	for _, entry := range tags {
		for _, tag := range strings.Split(entry, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				out = append(out, tag)
			}
		}
	}
	return out
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getStringSlice := func(name string) []string {
		if v, err := cmd.Flags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetStringSlice(name); err == nil && len(v) > 0 {
			return v
		}
		return nil
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	getDuration := func(name string) time.Duration {
		if v, err := cmd.Flags().GetDuration(name); err == nil {
			return v
		}
		v, _ := cmd.PersistentFlags().GetDuration(name)
		return v
	}

	getInt := func(name string) int {
		if v, err := cmd.Flags().GetInt(name); err == nil {
			return v
		}
		v, _ := cmd.PersistentFlags().GetInt(name)
		return v
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["output-dir"] = v
	}
	if v := getString("templates"); v != "" {
		m["templates.dir"] = v
	}
	if v := getStringSlice("include-tags"); len(v) > 0 {
		m["include-tags"] = v
	}
	if flagChanged("ignore-unused-models") {
		m["ignore-unused-models"] = getBool("ignore-unused-models")
	}
	if v := getString("type-override-extension"); v != "" {
		m["type-override-extension"] = v
	}
	if v := getString("output-extension"); v != "" {
		m["output-extension"] = v
	}
	if flagChanged("dry-run") {
		m["dry-run"] = getBool("dry-run")
	}

	if flagChanged("fetch-timeout") {
		m["fetch.timeout"] = getDuration("fetch-timeout")
	}
	if flagChanged("fetch-retries") {
		m["fetch.retries"] = getInt("fetch-retries")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if !strings.HasPrefix(c.TypeOverrideExtension, "x-") {
		return fmt.Errorf("invalid type override extension: %q (must start with x-)", c.TypeOverrideExtension)
	}
	if c.OutputExtension == "" {
		return fmt.Errorf("output extension is required")
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("invalid fetch timeout: %s", c.Fetch.Timeout)
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("invalid fetch retries: %d (must be zero or more)", c.Fetch.Retries)
	}
	return nil
}

// ValidateOutput checks the settings needed to write generated files.
func (c *Config) ValidateOutput() error {
	if c.OutputDir == "" && !c.DryRun {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
