package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/seedpaint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the host configuration shared by the subcommands. Sketch
// parameters are not part of it; they travel as --set pairs or a settings
// file so that the schema stays the only parameter surface.
type Config struct {
	Sketch   string   `mapstructure:"sketch"`
	Width    int      `mapstructure:"width"`
	Height   int      `mapstructure:"height"`
	Settings string   `mapstructure:"settings"`
	Set      []string `mapstructure:"set"`
	Out      string   `mapstructure:"out"`
	HUD      bool     `mapstructure:"hud"`
	Debug    bool     `mapstructure:"debug"`
}

// defineFlags registers the flags every sketch-driven subcommand accepts.
func defineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "optional config file (json, yaml or toml)")
	cmd.Flags().StringP("sketch", "s", "lines", "sketch to render")
	cmd.Flags().IntP("width", "W", 640, "surface width in pixels")
	cmd.Flags().IntP("height", "H", 480, "surface height in pixels")
	cmd.Flags().StringP("settings", "", "", "JSON file of sketch settings")
	cmd.Flags().StringSliceP("set", "", nil, "sketch setting as name=value (repeatable)")
	cmd.Flags().BoolP("debug", "", false, "log generation timings to stderr")
}

// getConfig layers flags over SEEDPAINT_* environment variables over the
// optional config file.
func getConfig(cmd *cobra.Command, bind ...string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEEDPAINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, flag := range append([]string{"sketch", "width", "height", "settings", "set", "debug"}, bind...) {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = v.BindPFlag(flag, f)
		}
	}

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound *os.PathError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
			return Config{}, fmt.Errorf("config file %s not found", configFile)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if conf.Width <= 0 || conf.Height <= 0 {
		return Config{}, fmt.Errorf("invalid size %dx%d", conf.Width, conf.Height)
	}
	return conf, nil
}

// assignment is one --set name=value pair.
type assignment struct {
	name  string
	value float64
}

func parseAssignments(pairs []string) ([]assignment, error) {
	out := make([]assignment, 0, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("setting %q: want name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", pair, err)
		}
		out = append(out, assignment{name: name, value: v})
	}
	return out, nil
}

// applySettings applies the settings file, if any, and then the --set pairs.
func applySettings(conf Config, schema *seedpaint.Schema) error {
	if conf.Settings != "" {
		data, err := os.ReadFile(conf.Settings)
		if err != nil {
			return fmt.Errorf("read settings: %w", err)
		}
		if err := schema.ApplyJSON(data); err != nil {
			return err
		}
	}
	pairs, err := parseAssignments(conf.Set)
	if err != nil {
		return err
	}
	for _, a := range pairs {
		if err := schema.Set(a.name, a.value); err != nil {
			return err
		}
	}
	return nil
}

func lookupSketch(name string) (seedpaint.Sketch, error) {
	sk, ok := seedpaint.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown sketch %q (have %s)", name, strings.Join(seedpaint.Sketches(), ", "))
	}
	return sk, nil
}

// newGenerator builds a Ready generator for conf.Sketch on surface, with the
// configured settings applied.
func newGenerator(conf Config, surface seedpaint.Surface) (*seedpaint.Generator, error) {
	sk, err := lookupSketch(conf.Sketch)
	if err != nil {
		return nil, err
	}
	gen, err := seedpaint.NewGenerator(sk, surface, seedpaint.GeneratorConfig{Debug: conf.Debug})
	if err != nil {
		return nil, err
	}
	if err := applySettings(conf, gen.Settings()); err != nil {
		return nil, err
	}
	if err := gen.Initialize(); err != nil {
		return nil, err
	}
	return gen, nil
}
