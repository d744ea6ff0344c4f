package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults used when a document omits a field or cannot be loaded.
const (
	DefaultLogFile      = "log.txt"
	DefaultRotation     = true
	DefaultRotationSize = int64(10 * 1024 * 1024)
)

// Config controls gating and file output for a Logger.
// A Config is read once and not modified by logging calls.
type Config struct {
	// LogLevels maps a level tag (or bare level name) to its enabled flag.
	// Tags missing from the map are enabled.
	// Default: DefaultLevels()
	LogLevels map[string]bool `json:"log_levels" yaml:"log_levels" toml:"log_levels"`
	// LogFile is the active log file used by ToFile writes.
	// Default: "log.txt"
	LogFile string `json:"log_file" yaml:"log_file" toml:"log_file" validate:"required"`
	// LogRotation enables size-based rotation before each file write.
	// Default: true
	LogRotation bool `json:"log_rotation" yaml:"log_rotation" toml:"log_rotation"`
	// LogRotationSize is the size in bytes at which the active file is rotated.
	// Default: 10485760
	LogRotationSize int64 `json:"log_rotation_size" yaml:"log_rotation_size" toml:"log_rotation_size" validate:"gte=0"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogLevels:       DefaultLevels(),
		LogFile:         DefaultLogFile,
		LogRotation:     DefaultRotation,
		LogRotationSize: DefaultRotationSize,
	}
}

// Enabled reports whether messages with tag pass gating. The tag is looked up
// first, then the bare name of a matching built-in level. Absent keys are enabled.
func (c Config) Enabled(tag string) bool {
	if v, ok := c.LogLevels[tag]; ok {
		return v
	}
	if l, ok := LevelByName(tag); ok {
		if v, ok := c.LogLevels[l.Name]; ok {
			return v
		}
	}
	return true
}

// clone returns a deep copy so a Logger never shares the caller's map.
func (c Config) clone() Config {
	out := c
	if c.LogLevels != nil {
		out.LogLevels = make(map[string]bool, len(c.LogLevels))
		for k, v := range c.LogLevels {
			out.LogLevels[k] = v
		}
	}
	return out
}

// Encoding names a configuration document format.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
	TOML Encoding = "toml"
)

// EncodingFromPath picks an Encoding from the file extension. Unknown extensions are JSON.
func EncodingFromPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return JSON
	}
}

// ParseEncoding validates a user-supplied encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch f := Encoding(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown config format %q (want json, yaml or toml)", s)
	}
}

var validate = validator.New()

// ReadConfig decodes and validates the document at path. Scalar fields absent
// from the document keep their defaults; log_levels, when present, replaces the
// default map as a whole. Any failure is a *ConfigLoadError.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &ConfigLoadError{Path: path, Err: err}
	}

	cfg := Config{
		LogFile:         DefaultLogFile,
		LogRotation:     DefaultRotation,
		LogRotationSize: DefaultRotationSize,
	}
	if err := decode(data, EncodingFromPath(path), &cfg); err != nil {
		return Config{}, &ConfigLoadError{Path: path, Err: err}
	}
	if cfg.LogLevels == nil {
		cfg.LogLevels = DefaultLevels()
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, &ConfigLoadError{Path: path, Err: fmt.Errorf("invalid configuration: %w", err)}
	}
	return cfg, nil
}

func decode(data []byte, format Encoding, cfg *Config) error {
	switch format {
	case YAML:
		return yaml.Unmarshal(data, cfg)
	case TOML:
		return toml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

// LoadConfig never fails: on success it prints a SUCCESS notice and returns the
// parsed config; otherwise it prints an ERROR notice and returns DefaultConfig.
// Notices go to stdout only and ignore level gating.
func LoadConfig(path string) Config {
	return LoadConfigTo(outStdout, path)
}

// LoadConfigTo is LoadConfig with the notices written to w.
func LoadConfigTo(w io.Writer, path string) Config {
	cfg, err := ReadConfig(path)
	if err != nil {
		notify(w, ErrorLevel, fmt.Sprintf("Error loading configuration: %v", err))
		return DefaultConfig()
	}
	notify(w, SuccessLevel, "Configuration loaded successfully.")
	return cfg
}

func notify(w io.Writer, l Level, msg string) {
	_, _ = io.WriteString(w, Format(msg, l.Tag, l.Color)+"\n")
}

// Encode writes the recognized fields of c to w.
func (c Config) Encode(w io.Writer, format Encoding) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(c); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(c)
	}
}

// WriteConfigFile writes c to path in the format implied by its extension.
func WriteConfigFile(path string, c Config) error {
	var buf bytes.Buffer
	if err := c.Encode(&buf, EncodingFromPath(path)); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
