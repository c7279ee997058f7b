// Package config reads the configuration of the jcs command from the
// environment, and from a .env file in the profile directory if there is one.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go-simpler.org/env"

	"jcs.mleku.dev/chk"
	"jcs.mleku.dev/config/keyvalue"
	envfile "jcs.mleku.dev/env"
	"jcs.mleku.dev/log"
)

// C is the configuration of the jcs command.
type C struct {
	AppName  string `env:"JCS_APP_NAME" default:"jcs"`
	Profile  string `env:"JCS_PROFILE" usage:"directory holding the .env file (default: the user config directory plus JCS_APP_NAME)"`
	LogLevel string `env:"JCS_LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	Digest   bool   `env:"JCS_DIGEST" default:"false" usage:"print the SHA-256 of the canonical form instead of the canonical form"`
	Newline  bool   `env:"JCS_NEWLINE" default:"true" usage:"end each output with a newline"`
	Pprof    bool   `env:"JCS_PPROF" default:"false" usage:"write a CPU profile to the current directory"`
	MaxInput int    `env:"JCS_MAX_INPUT" default:"64" usage:"largest JSON document read, in megabytes"`
}

// New loads the configuration. Values from the environment take precedence
// over values from the .env file.
func New() (cfg *C, err error) {
	cfg = &C{}
	if err = env.Load(cfg, nil); chk.T(err) {
		return
	}
	if cfg.Profile == "" {
		cfg.Profile = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}
	envPath := filepath.Join(cfg.Profile, ".env")
	if _, err = os.Stat(envPath); err != nil {
		// no file is not an error
		err = nil
		return
	}
	var e envfile.Env
	if e, err = envfile.GetEnv(envPath); chk.T(err) {
		return
	}
	fromFile := &C{}
	if err = env.Load(fromFile, &env.Options{Source: e}); chk.E(err) {
		return
	}
	overlay(cfg, fromFile)
	log.D.F("loaded %s", envPath)
	return
}

// overlay copies the settings of file into cfg where they are not set in the
// environment.
func overlay(cfg, file *C) {
	set := func(key string) bool {
		_, ok := os.LookupEnv(key)
		return ok
	}
	if !set("JCS_LOG_LEVEL") {
		cfg.LogLevel = file.LogLevel
	}
	if !set("JCS_DIGEST") {
		cfg.Digest = file.Digest
	}
	if !set("JCS_NEWLINE") {
		cfg.Newline = file.Newline
	}
	if !set("JCS_PPROF") {
		cfg.Pprof = file.Pprof
	}
	if !set("JCS_MAX_INPUT") {
		cfg.MaxInput = file.MaxInput
	}
}

// HelpRequested returns true if any of the common types of help invocation are
// found as the first command line parameter/flag.
func HelpRequested() (help bool) {
	if len(os.Args) > 1 {
		switch strings.ToLower(os.Args[1]) {
		case "help", "-h", "--h", "-help", "--help", "?":
			help = true
		}
	}
	return
}

// GetEnv returns true if the first command line parameter is "env".
func GetEnv() (requested bool) {
	return len(os.Args) > 1 && strings.ToLower(os.Args[1]) == "env"
}

// PrintEnv writes the current configuration as a .env file.
func PrintEnv(cfg *C, printer io.Writer) { keyvalue.PrintEnv(*cfg, printer) }

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer (usually os.Stderr or os.Stdout).
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer,
		"Usage: %s [FILE ...]\n\n"+
			"Writes the RFC 8785 canonical form of each JSON FILE, or of standard input\n"+
			"if there are none, to standard output.\n\n"+
			"Environment variables that configure %s:\n\n", os.Args[0], cfg.AppName)
	env.Usage(cfg, printer, nil)
	_, _ = fmt.Fprintf(printer,
		"\nCLI parameter 'help' also prints this information\n"+
			"\na .env file in the directory JCS_PROFILE is loaded if it exists, and the\n"+
			"environment overrides it\n\n"+
			"use the parameter 'env' to print out the current configuration\n\n"+
			"set the defaults using\n\n\t%s env >%s\n\n", os.Args[0],
		filepath.Join(cfg.Profile, ".env"))
}
