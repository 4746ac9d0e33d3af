// Package config loads typed configuration structs from the environment.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

type (
	// Options holds the settings used by Load.
	Options struct {
		prefix string
	}

	// Option mutates the Options used by Load.
	Option func(opts *Options)

	// WithDefault is implemented by config structs able to fill their own zero values.
	WithDefault interface {
		ApplyDefault()
	}
)

// WithEnvPrefix prepends prefix (and an underscore) to every environment variable name.
func WithEnvPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// Load builds a T from the environment.
//
// Every exported field is bound to a variable named after the field path in
// screaming snake case, e.g. field Server.LogLevel with prefix APP reads
// APP_SERVER_LOG_LEVEL. Nil nested struct pointers are allocated, then
// ApplyDefault is called on every struct implementing WithDefault, parents first.
func Load[T any](opts ...Option) (*T, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var conf T
	bindEnvs(v, options.prefix, reflect.TypeOf(conf))

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	applyDefaults(reflect.ValueOf(&conf))

	return &conf, nil
}

func bindEnvs(v *viper.Viper, envPrefix string, typ reflect.Type, parts ...string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}

		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct {
			bindEnvs(v, envPrefix, fieldType, append(parts, name)...)
			continue
		}

		key := strings.Join(append(parts, name), ".")
		envParts := make([]string, 0, len(parts)+1)
		for _, part := range append(parts, name) {
			envParts = append(envParts, toScreamingSnakeCase(part))
		}
		_ = v.BindEnv(key, envName(envPrefix, strings.Join(envParts, "_")))
	}
}

func applyDefaults(val reflect.Value) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			if !val.CanSet() || val.Type().Elem().Kind() != reflect.Struct {
				return
			}
			val.Set(reflect.New(val.Type().Elem()))
		}
		if withDefault, ok := val.Interface().(WithDefault); ok {
			withDefault.ApplyDefault()
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		if !typ.Field(i).IsExported() {
			continue
		}
		field := val.Field(i)
		switch {
		case field.Kind() == reflect.Pointer:
			applyDefaults(field)
		case field.Kind() == reflect.Struct && field.CanAddr():
			applyDefaults(field.Addr())
		}
	}
}

func envName(envPrefix string, in string) string {
	if envPrefix != "" {
		return strings.ToUpper(envPrefix + "_" + in)
	}
	return strings.ToUpper(in)
}

// toScreamingSnakeCase turns a Go identifier such as CustomerId into CUSTOMER_ID.
func toScreamingSnakeCase(in string) string {
	in = strings.TrimSpace(in)

	sb := strings.Builder{}
	sb.Grow(len(in) + len(in)/3)

	for i, b := range []byte(in) {
		separate := false
		switch {
		case 'a' <= b && b <= 'z':
			b -= 'a' - 'A'
		case 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
			separate = true
		case b == '_' || b == '-':
			if i > 0 {
				sb.WriteByte('_')
			}
			continue
		}

		if i > 0 && separate {
			sb.WriteByte('_')
		}
		sb.WriteByte(b)
	}

	return sb.String()
}
