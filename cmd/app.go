// Package cmd implements the CLI application behind the scs tool.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/spf13/viper"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&spreadsCmd{}, "options")
	c.Register(&breakevenCmd{}, "options")

	c.Register(&psCmd{}, "stocks")

	c.Register(&watchlistCmd{}, "watchlist")
	c.Register(&rhLoginCmd{}, "watchlist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML file with scan defaults. Defaults to ./screener.yaml when present.")

// LoadDefaults reads the optional defaults file into viper. Flags
// declared with cfgFloat/cfgInt pick their default value from it, so
// the file sets the baseline and flags override per run. A missing
// file is not an error; a malformed one is fatal.
func LoadDefaults() {
	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	} else {
		viper.SetConfigName("screener")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	err := viper.ReadInConfig()
	if err == nil {
		return
	}
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && *configFile == "" {
		return
	}
	log.Fatalf("cannot read config: %v", err)
}

// cfgFloat returns the configured default for key, or the fallback.
func cfgFloat(key string, fallback float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return fallback
}

// cfgInt returns the configured default for key, or the fallback.
func cfgInt(key string, fallback int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

// printMarkdown renders a markdown report for the terminal. If the
// terminal renderer cannot be built the raw markdown is still printed,
// ugly but complete.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
