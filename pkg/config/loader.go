package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every farmops environment variable.
const EnvPrefix = "FARMOPS"

// legacyEnv maps configuration keys to the environment names used by the original
// install scripts. The FARMOPS_* name wins when both are set.
func legacyEnv() map[string]string {
	return map[string]string{
		"wait.max-wait": "MAX_WAIT_TIME",
		"wait.interval": "POLL_INTERVAL",
	}
}

// flagKeys maps command-line flag names to configuration keys.
func flagKeys() map[string]string {
	return map[string]string{
		"max-wait":            "wait.max-wait",
		"interval":            "wait.interval",
		"progress-every":      "wait.progress-every",
		"fail-on-probe-error": "wait.fail-on-probe-error",
		"project-dir":         "project.dir",
		"compose-file":        "project.compose-file",
		"db-container":        "project.db-container",
		"www-container":       "project.www-container",
		"site-url":            "project.site-url",
		"database-url":        "database.url",
		"accept-status":       "http.accept-status",
		"http-timeout":        "http.timeout",
		"metrics-file":        "metrics-file",
		"output":              "output",
		"verbose":             "verbose",
	}
}

// NewViper returns a Viper instance with defaults, config search paths, and
// environment handling registered.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("farmops")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "farmops"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default())

	for key, legacy := range legacyEnv() {
		envKey := EnvPrefix + "_" + strings.NewReplacer(".", "_", "-", "_").Replace(strings.ToUpper(key))
		_ = v.BindEnv(key, envKey, legacy)
	}

	return v
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("wait.max-wait", def.Wait.MaxWait)
	v.SetDefault("wait.interval", def.Wait.Interval)
	v.SetDefault("wait.progress-every", def.Wait.ProgressEvery)
	v.SetDefault("wait.fail-on-probe-error", def.Wait.FailOnProbeError)
	v.SetDefault("project.dir", def.Project.Dir)
	v.SetDefault("project.compose-file", def.Project.ComposeFile)
	v.SetDefault("project.db-container", def.Project.DBContainer)
	v.SetDefault("project.www-container", def.Project.WWWContainer)
	v.SetDefault("project.site-url", def.Project.SiteURL)
	v.SetDefault("database.url", def.Database.URL)
	v.SetDefault("database.install-url", def.Database.InstallURL)
	v.SetDefault("http.accept-status", def.HTTP.AcceptStatus)
	v.SetDefault("http.timeout", def.HTTP.Timeout)
	v.SetDefault("site.name", def.Site.Name)
	v.SetDefault("site.account-name", def.Site.AccountName)
	v.SetDefault("site.account-pass", def.Site.AccountPass)
	v.SetDefault("site.drupal-constraint", def.Site.DrupalConstraint)
	v.SetDefault("composer.retries", def.Composer.Retries)
	v.SetDefault("composer.retry-interval", def.Composer.RetryInterval)
	v.SetDefault("metrics-file", def.MetricsFile)
	v.SetDefault("output", def.Output)
	v.SetDefault("verbose", def.Verbose)
}

// BindFlags binds every known flag present in flags to its configuration key.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys() {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		err := v.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}

// Load reads the config file (if any), decodes the merged configuration, and
// validates it. A missing farmops.yaml on the search path is not an error; a
// missing file set explicitly with SetConfigFile is.
func Load(v *viper.Viper) (Config, error) {
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		secondsOrDurationHook(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// secondsOrDurationHook decodes strings and integers into time.Duration. Bare numbers
// are seconds, the way MAX_WAIT_TIME and POLL_INTERVAL were always interpreted.
func secondsOrDurationHook() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))

	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType || from == durationType {
			return data, nil
		}

		switch from.Kind() { //nolint:exhaustive // other kinds fall through to mapstructure
		case reflect.Int, reflect.Int32, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()) * time.Second, nil
		case reflect.String:
		default:
			return data, nil
		}

		raw := strings.TrimSpace(data.(string)) //nolint:forcetypeassert // guarded by Kind check

		seconds, err := strconv.Atoi(raw)
		if err == nil {
			return time.Duration(seconds) * time.Second, nil
		}

		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", raw, err)
		}

		return parsed, nil
	}
}
