package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cruzyjapan/Claude-Code-GitAgent/internal/locale"
)

// Config is the loaded tool configuration. Defaults apply when no config
// file exists, so the tool runs unconfigured.
type Config struct {
	Language           string
	MaxTitleLength     int
	TargetBranch       string
	AutoPush           bool
	IncludeFileChanges bool
	// Templates overrides built-in message templates, keyed by language
	// then change type; values carry {summary} and {details} placeholders.
	Templates map[string]map[string]string
}

// Lang returns the normalized active language.
func (c *Config) Lang() locale.Lang {
	return locale.Normalize(c.Language)
}

const configName = "gitagent"

// Load reads configuration from an explicit path, or searches the working
// directory and ~/.gitagent for gitagent.json. Environment variables with
// the GITAGENT_ prefix override file values (GITAGENT_SYSTEM_LANGUAGE etc).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")

	v.SetDefault("system.language", "en")
	v.SetDefault("system.max_title_length", 72)
	v.SetDefault("system.target_branch", "")
	v.SetDefault("system.auto_push", false)
	v.SetDefault("analysis.include_file_changes", true)

	v.SetEnvPrefix("GITAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, "."+configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is fine; defaults apply. An
		// explicit --config path that cannot be read is still an error.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Language:           v.GetString("system.language"),
		MaxTitleLength:     v.GetInt("system.max_title_length"),
		TargetBranch:       v.GetString("system.target_branch"),
		AutoPush:           v.GetBool("system.auto_push"),
		IncludeFileChanges: v.GetBool("analysis.include_file_changes"),
		Templates:          make(map[string]map[string]string),
	}

	for lang := range v.GetStringMap("message_templates") {
		cfg.Templates[lang] = v.GetStringMapString("message_templates." + lang)
	}

	return cfg, nil
}

// WriteDefault writes a default gitagent.json to path for editing.
func WriteDefault(path string) error {
	doc := map[string]interface{}{
		"system": map[string]interface{}{
			"language":         "en",
			"max_title_length": 72,
			"target_branch":    "",
			"auto_push":        false,
		},
		"analysis": map[string]interface{}{
			"include_file_changes": true,
		},
		"message_templates": map[string]interface{}{
			"en": map[string]string{
				"feat": "feat: {summary}\n\n{details}",
				"fix":  "fix: {summary}\n\n{details}",
			},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
