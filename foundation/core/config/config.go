// File: config.go
// Title: Configuration Loading and Access
// Description: Loads TOML or YAML configuration into a key tree with dotted
//              path access. Environment variables with an optional prefix
//              override file values. Used by the command line tool to read
//              default widths, separators and log settings.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-19 v0.2.0: Dropped file watching and request context, nested defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
	"github.com/satish049/Ultimate.Utilities/foundation/utils/stringx"
)

// Format is a configuration file format.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	// FormatYAML handles .yaml and .yml files.
	FormatYAML
	// FormatAuto picks the format from the file extension.
	FormatAuto
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is a loaded configuration. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	lookupEnv func(string) (string, bool)
}

// LoadOptions controls LoadWithOptions and LoadFromString.
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	// Defaults may be nested maps or use dotted keys.
	Defaults map[string]interface{}
}

// Load reads filePath, detecting the format from its extension.
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions reads filePath using options.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, ulterror.New("config file path cannot be empty").
			WithCode(ulterror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := ulterror.CodeConfigError
		if os.IsNotExist(err) {
			code = ulterror.CodeNotFound
		}
		return nil, ulterror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := load(content, format, options)
	if err != nil {
		return nil, ulterror.Wrap(err, "failed to parse config file").
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}
	cfg.filePath = filePath
	return cfg, nil
}

// LoadFromString parses content. FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions parses content using options.
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}
	cfg, err := load([]byte(content), format, options)
	if err != nil {
		return nil, ulterror.Wrap(err, "failed to parse config from string").
			WithOperation("config.LoadFromString")
	}
	return cfg, nil
}

// Empty returns a configuration with no values.
func Empty() *Config {
	return &Config{data: make(map[string]interface{}), lookupEnv: os.LookupEnv}
}

func load(content []byte, format Format, options LoadOptions) (*Config, error) {
	data, err := parseContent(content, format)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	cfg := &Config{
		data:      data,
		format:    format,
		envPrefix: options.EnvPrefix,
		lookupEnv: os.LookupEnv,
	}
	for key, value := range options.Defaults {
		cfg.applyDefault(key, value)
	}
	return cfg, nil
}

func (c *Config) applyDefault(key string, value interface{}) {
	if nested, ok := value.(map[string]interface{}); ok {
		for k, v := range nested {
			c.applyDefault(key+"."+k, v)
		}
		return
	}
	if !c.hasPath(key) {
		c.setPath(key, value)
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, ulterror.Wrap(err, "TOML parse error").
				WithCode(ulterror.CodeInvalidFormat)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, ulterror.Wrap(err, "YAML parse error").
				WithCode(ulterror.CodeInvalidFormat)
		}
		data = normalizeYAML(data)
	default:
		return nil, ulterror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(ulterror.CodeUnsupported).
			WithDetail("format", format.String())
	}
	return data, nil
}

// normalizeYAML converts nested map[interface{}]interface{} values, which
// yaml.v3 can produce for non-string keys, to map[string]interface{}.
func normalizeYAML(data map[string]interface{}) map[string]interface{} {
	for k, v := range data {
		data[k] = normalizeValue(v)
	}
	return data
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return normalizeYAML(val)
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[fmt.Sprint(k)] = normalizeValue(inner)
		}
		return out
	case []interface{}:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}

// GetString returns the value at key as a string.
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.envValue(key); ok {
		return env
	}

	value := c.get(key)
	switch v := value.(type) {
	case nil:
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the value at key as an int.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env, ok := c.envValue(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(env)); err == nil {
			return n
		}
	}

	switch v := c.get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns the value at key as a bool.
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env, ok := c.envValue(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(env)); err == nil {
			return b
		}
	}

	switch v := c.get(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns the value at key as a string slice. An environment
// override is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	if env, ok := c.envValue(key); ok {
		return stringx.StripAll(stringx.SplitChar(env, ',')...)
	}

	switch v := c.get(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprintf("%v", item)
		}
		return out
	case string:
		return []string{v}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has reports whether key is present in the file data.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hasPath(key)
}

// Set stores value at key, creating intermediate tables.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPath(key, value)
}

// Keys returns all leaf keys in dotted form, sorted.
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(full, nested)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// FilePath returns the file the configuration was loaded from.
func (c *Config) FilePath() string { return c.filePath }

// Format returns the parsed format.
func (c *Config) Format() Format { return c.format }

// EnvKey returns the environment variable consulted for key:
// "abbreviate.width" with prefix "ultimate" becomes ULTIMATE_ABBREVIATE_WIDTH.
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

func (c *Config) envValue(key string) (string, bool) {
	if c.envPrefix == "" || c.lookupEnv == nil {
		return "", false
	}
	v, ok := c.lookupEnv(c.EnvKey(key))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (c *Config) get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getPath(key)
}

func (c *Config) getPath(key string) interface{} {
	current := c.data
	parts := strings.Split(key, ".")
	for i, k := range parts {
		if i == len(parts)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) hasPath(key string) bool {
	return c.getPath(key) != nil
}

func (c *Config) setPath(key string, value interface{}) {
	if nested, ok := value.(map[string]interface{}); ok {
		for k, v := range nested {
			c.setPath(key+"."+k, v)
		}
		return
	}

	current := c.data
	parts := strings.Split(key, ".")
	for i, k := range parts {
		if i == len(parts)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}
