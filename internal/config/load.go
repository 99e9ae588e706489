package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MEDIASHERLOCK"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"mediainfo":   "mediainfo_binary",
	"timeout":     "probe_timeout",
	"concurrency": "concurrency",
	"output":      "output",
	"color":       "color",
	"open":        "open",
	"keep":        "keep",
	"viewer":      "viewer",
	"output-dir":  "output_dir",
	"log-level":   "log.level",
	"log-file":    "log.file",
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	def := DefaultConfig()

	fs.String("mediainfo", def.MediainfoBinary, "mediainfo binary to run")
	fs.Duration("timeout", def.ProbeTimeout, "timeout for a single mediainfo run")
	fs.IntP("concurrency", "j", def.Concurrency, "number of files probed in parallel")
	fs.StringP("output", "o", string(def.Output), "output format: text or json")
	fs.String("color", string(def.Color), "colorize terminal output: auto, always or never")
	fs.Bool("open", def.Open, "write the summary to a file and open it in a viewer")
	fs.Bool("keep", def.Keep, "keep the summary file after the viewer exits")
	fs.String("viewer", "", "viewer command used with --open (default depends on the platform)")
	fs.String("output-dir", def.OutputDir, "directory for the summary file (default: system temp dir)")
	fs.String("log-level", def.Log.Level, "log level: trace, debug, info, warn, error")
	fs.String("log-file", def.Log.File, "also write logs to this file (rotated)")
}

// Load resolves the configuration. cfgFile overrides the config file search;
// fs may be nil. It returns the config file used, if any.
func Load(v *viper.Viper, fs *pflag.FlagSet, cfgFile string) (Config, string, error) {
	setDefaults(v, DefaultConfig())

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, "", err
				}
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used, err := readConfigFile(v, cfgFile)
	if err != nil {
		return Config{}, "", err
	}

	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToFieldsHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, used, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, used, err
	}
	return cfg, used, nil
}

func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("mediainfo_binary", def.MediainfoBinary)
	v.SetDefault("probe_timeout", def.ProbeTimeout)
	v.SetDefault("concurrency", def.Concurrency)
	v.SetDefault("output", string(def.Output))
	v.SetDefault("color", string(def.Color))
	v.SetDefault("open", def.Open)
	v.SetDefault("keep", def.Keep)
	v.SetDefault("viewer", "")
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("output_name", def.OutputName)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)
}

func readConfigFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".mediasherlock")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("/etc/mediasherlock/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// stringToFieldsHookFunc splits a command line given as one string (flag or
// environment variable) into its words.
func stringToFieldsHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		return strings.Fields(data.(string)), nil
	}
}
