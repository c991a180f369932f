package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "BLOCKGEN"
)

// Settings are the user-tunable knobs read from config.yaml and the
// environment.
type Settings struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// FallbackLanguage is assigned to files whose language cannot be
	// detected from their name or content.
	FallbackLanguage string `mapstructure:"fallback_language"`
	// Aliases map editor language identifiers onto catalog languages.
	Aliases map[string]string `mapstructure:"aliases"`
}

// FilePath returns the path of config.yaml inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, fileName+"."+fileType)
}

// Load reads settings from <dir>/config.yaml, then BLOCKGEN_* environment
// variables. A missing file yields defaults. An empty dir skips the file.
func Load(dir string) (Settings, error) {
	v := viper.New()
	v.SetDefault("log_level", "warn")
	v.SetDefault("fallback_language", "plaintext")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	if err := v.BindEnv("aliases"); err != nil {
		return Settings{}, fmt.Errorf("binding aliases env: %w", err)
	}

	if dir != "" {
		v.SetConfigFile(FilePath(dir))
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return Settings{}, fmt.Errorf("reading config %s: %w", FilePath(dir), err)
		}
	}

	var settings Settings
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		aliasesFromString,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&settings, hooks); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	return settings, nil
}

// isNotFound reports whether err means the config file does not exist.
// SetConfigFile surfaces a raw fs error rather than ConfigFileNotFoundError.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

var aliasMapType = reflect.TypeOf(map[string]string{})

// aliasesFromString decodes BLOCKGEN_ALIASES, which arrives as a string.
func aliasesFromString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != aliasMapType {
		return data, nil
	}
	return ParseAliases(data.(string))
}

// ParseAliases parses "from=to" pairs separated by commas, as in
// BLOCKGEN_ALIASES="py=python,cxx=cpp". Blank entries are ignored.
func ParseAliases(value string) (map[string]string, error) {
	aliases := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		from, to, ok := strings.Cut(pair, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid alias %q: want from=to", pair)
		}
		aliases[strings.ToLower(from)] = strings.ToLower(to)
	}
	return aliases, nil
}
