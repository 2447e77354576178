package lint

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Engine defaults applied when an option is left at its zero value.
const (
	DefaultMaxLineLength = 79
	DefaultIndentSize    = 4
)

// DefaultIgnore lists the codes ignored when neither select nor ignore is configured.
var DefaultIgnore = []string{"E121", "E123", "E126", "E226", "E24", "E704", "W503", "W504"}

// Options are the engine settings for one check.
type Options struct {
	Select        []string `mapstructure:"select"`
	Ignore        []string `mapstructure:"ignore"`
	MaxLineLength int      `mapstructure:"max_line_length"`
	MaxDocLength  int      `mapstructure:"max_doc_length"` // 0 disables W505
	MaxComplexity int      `mapstructure:"max_complexity"`
	IndentSize    int      `mapstructure:"indent_size"`
	HangClosing   bool     `mapstructure:"hang_closing"`
	First         bool     `mapstructure:"first"` // report only the first occurrence of each code
}

// OptionsFromConfig decodes an option map keyed by normalized option names.
// Unknown keys are ignored. Scalar strings are converted to the field types.
func OptionsFromConfig(values map[string]any) (Options, error) {
	var opts Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return Options{}, fmt.Errorf("failed to build options decoder: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return Options{}, fmt.Errorf("failed to decode engine options: %w", err)
	}
	return opts.withDefaults(), nil
}

func (o Options) withDefaults() Options {
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = DefaultMaxLineLength
	}
	if o.IndentSize <= 0 {
		o.IndentSize = DefaultIndentSize
	}
	return o
}

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, handling float64 from JSON/YAML decoders.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetStringSliceOption extracts a string slice option.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}
