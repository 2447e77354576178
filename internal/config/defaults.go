package config

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind is the value kind of an option. It decides coercion and merging.
type Kind int

const (
	// KindList values accumulate across layers.
	KindList Kind = iota
	// KindInt values are replaced by higher layers.
	KindInt
	// KindBool values are replaced by higher layers.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Option is one row of the policy table.
type Option struct {
	Name    string
	Kind    Kind
	Default any
}

// Policy lists every option the resolver understands.
// An int default of 0 means "not set", the engine applies its own default.
var Policy = []Option{
	{Name: "select", Kind: KindList, Default: []string{}},
	{Name: "ignore", Kind: KindList, Default: []string{}},
	{Name: "max_line_length", Kind: KindInt, Default: 0},
	{Name: "max_doc_length", Kind: KindInt, Default: 0},
	{Name: "max_complexity", Kind: KindInt, Default: 0},
	{Name: "indent_size", Kind: KindInt, Default: 0},
	{Name: "hang_closing", Kind: KindBool, Default: false},
	{Name: "first", Kind: KindBool, Default: false},
}

// Lookup returns the policy for a normalized option name.
func Lookup(name string) (Option, bool) {
	for _, opt := range Policy {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Defaults returns a fresh EffectiveConfig holding every policy default.
func Defaults() EffectiveConfig {
	cfg := make(EffectiveConfig, len(Policy))
	for _, opt := range Policy {
		if list, ok := opt.Default.([]string); ok {
			cfg[opt.Name] = slices.Clone(list)
			continue
		}
		cfg[opt.Name] = opt.Default
	}
	return cfg
}

// Normalize converts an option key to its canonical form:
// lower case, leading dashes dropped, "-" folded to "_".
func Normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimLeft(key, "-")
	return strings.ReplaceAll(key, "-", "_")
}

// IsDefault reports whether an already coerced value equals the option default.
func (o Option) IsDefault(v any) bool {
	switch o.Kind {
	case KindList:
		list, _ := v.([]string)
		return len(list) == 0
	default:
		return v == o.Default
	}
}

// Coerce converts a raw value to the option kind.
// Lists accept comma or newline separated strings.
func (o Option) Coerce(raw any) (any, error) {
	switch o.Kind {
	case KindList:
		return toList(raw)
	case KindInt:
		return toInt(raw)
	case KindBool:
		return toBool(raw)
	default:
		return nil, fmt.Errorf("option %s has unknown kind", o.Name)
	}
}

func toList(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case string:
		return splitList(v), nil
	case []string:
		return splitItems(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list item %v is %T, want string", item, item)
			}
			items = append(items, s)
		}
		return splitItems(items), nil
	default:
		return nil, fmt.Errorf("cannot use %T as a list", raw)
	}
}

func splitItems(items []string) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, splitList(item)...)
	}
	return out
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", v)
		}
		return n, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot use %T as a number", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "yes", "true", "on":
			return true, nil
		case "0", "no", "false", "off", "":
			return false, nil
		}
		return false, fmt.Errorf("%q is not a boolean", v)
	case nil:
		return false, nil
	default:
		return false, fmt.Errorf("cannot use %T as a boolean", raw)
	}
}
