package config

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/xyproto/env/v2"
)

import (
	"github.com/jpenilla/vineflower/bytecode"
)

// Preference keys.
const (
	SwitchExpressions = "swe"
	LogLevel          = "log"
	Threads           = "thr"
)

var defaults = map[string]string{
	SwitchExpressions: "1",
	LogLevel:          "INFO",
	Threads:           "0",
}

var envNames = map[string]string{
	SwitchExpressions: "VINEFLOWER_SWE",
	LogLevel:          "VINEFLOWER_LOG",
	Threads:           "VINEFLOWER_WORKERS",
}

const envClassVersion = "VINEFLOWER_CLASS_VERSION"

var logLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// Options carries the preferences and the class file version a pass
// runs under.
type Options struct {
	Prefs   map[string]string
	Version bytecode.Version
}

func Default() *Options {
	prefs := make(map[string]string, len(defaults))
	for k, v := range defaults {
		prefs[k] = v
	}
	return &Options{
		Prefs:   prefs,
		Version: bytecode.Latest,
	}
}

// Load returns the defaults overridden by the environment.
func Load() (*Options, error) {
	o := Default()
	if err := o.FromEnv(); err != nil {
		return nil, err
	}
	return o, nil
}

// FromEnv applies the VINEFLOWER_* variables on top of o.
func (o *Options) FromEnv() error {
	// re-read the process environment; env caches it at startup
	env.Load()
	for key, name := range envNames {
		if value := env.Str(name); value != "" {
			if err := o.Set(key, value); err != nil {
				return errors.Errorf("%v: %v", name, err)
			}
		}
	}
	if value := env.Str(envClassVersion); value != "" {
		v, err := bytecode.ParseVersion(value)
		if err != nil {
			return errors.Errorf("%v: %v", envClassVersion, err)
		}
		o.Version = v
	}
	return nil
}

func (o *Options) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case SwitchExpressions:
		if _, err := parseBool(value); err != nil {
			return err
		}
	case Threads:
		if n, err := strconv.Atoi(value); err != nil || n < 0 {
			return errors.Errorf("%v expects a non-negative count, got %q", key, value)
		}
	case LogLevel:
		value = strings.ToUpper(value)
		if !isLogLevel(value) {
			return errors.Errorf("%v expects one of %v, got %q", key, logLevels, value)
		}
	default:
		return errors.Errorf("unknown preference %q (known: %v)", key, Keys())
	}
	o.Prefs[key] = value
	return nil
}

// SetPair applies a "key=value" preference as given on the command line.
func (o *Options) SetPair(pair string) error {
	key, value, ok := strings.Cut(pair, "=")
	if !ok {
		return errors.Errorf("expected key=value, got %q", pair)
	}
	return o.Set(strings.TrimSpace(key), value)
}

func (o *Options) Bool(key string) bool {
	b, _ := parseBool(o.Prefs[key])
	return b
}

func (o *Options) Int(key string) int {
	n, _ := strconv.Atoi(o.Prefs[key])
	return n
}

func (o *Options) Debug() bool {
	level := o.Prefs[LogLevel]
	return level == "TRACE" || level == "DEBUG"
}

// Workers is the number of methods processed at once; 0 in the
// preferences means one per CPU.
func (o *Options) Workers() int {
	if n := o.Int(Threads); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// SwitchExpressionsEnabled gates the switch expression pass: the class
// file must be able to hold switch expressions and the preference must
// be on.
func (o *Options) SwitchExpressionsEnabled() bool {
	return o.Version.HasSwitchExpressions() && o.Bool(SwitchExpressions)
}

func (o *Options) String() string {
	keys := Keys()
	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v=%v", k, o.Prefs[k]))
	}
	parts = append(parts, fmt.Sprintf("class-version=%v", o.Version))
	return strings.Join(parts, " ")
}

func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, errors.Errorf("expected a boolean (1/0), got %q", s)
}

func isLogLevel(s string) bool {
	for _, l := range logLevels {
		if l == s {
			return true
		}
	}
	return false
}
