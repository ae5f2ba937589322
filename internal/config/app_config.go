package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/snapshot/internal/filter"
	"github.com/temirov/snapshot/internal/utils"
)

// ApplicationConfiguration holds the optional per-tree settings read from the
// configuration sidecar. Every zero value reproduces the reference behavior,
// so an absent file changes nothing.
type ApplicationConfiguration struct {
	Clipboard *bool              `mapstructure:"clipboard"`
	Tokens    TokenConfiguration `mapstructure:"tokens"`
	Paths     PathConfiguration  `mapstructure:"paths"`
}

// TokenConfiguration controls the advisory token estimate of the document.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// PathConfiguration extends the exclusion rules applied during traversal.
type PathConfiguration struct {
	Exclude      []string `mapstructure:"exclude"`
	UseGitignore *bool    `mapstructure:"use_gitignore"`
}

// CopyToClipboard reports whether the finished document should be copied to
// the system clipboard.
func (configuration ApplicationConfiguration) CopyToClipboard() bool {
	return configuration.Clipboard != nil && *configuration.Clipboard
}

// CountTokens reports whether a token estimate should be produced.
func (configuration ApplicationConfiguration) CountTokens() bool {
	return configuration.Tokens.Enabled != nil && *configuration.Tokens.Enabled
}

// UseGitignore reports whether the root .gitignore contributes patterns.
// Defaults to true, matching the reference behavior.
func (configuration ApplicationConfiguration) UseGitignore() bool {
	return configuration.Paths.UseGitignore == nil || *configuration.Paths.UseGitignore
}

// LoadApplicationConfiguration reads the configuration sidecar from the
// snapshot root. A missing file yields the zero configuration.
func LoadApplicationConfiguration(rootDirectory string) (ApplicationConfiguration, error) {
	configurationFilePath := filepath.Join(rootDirectory, filter.ConfigFileName)
	if _, statError := os.Stat(configurationFilePath); statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat %s: %w", configurationFilePath, statError)
	}

	viperInstance := viper.New()
	viperInstance.SetConfigFile(configurationFilePath)
	viperInstance.SetConfigType("yaml")
	if readError := viperInstance.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read %s: %w", configurationFilePath, readError)
	}

	var configuration ApplicationConfiguration
	if unmarshalError := viperInstance.Unmarshal(&configuration); unmarshalError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("parse %s: %w", configurationFilePath, unmarshalError)
	}
	configuration.Paths.Exclude = utils.DeduplicatePatterns(configuration.Paths.Exclude)
	return configuration, nil
}
