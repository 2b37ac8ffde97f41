package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timtadh/data-structures/test"
)

import (
	"github.com/jpenilla/vineflower/bytecode"
)

func TestDefaults(x *testing.T) {
	t := (*test.T)(x)
	o := Default()
	t.Assert(o.SwitchExpressionsEnabled(), "switch expressions should be on for the latest class version")
	t.Assert(!o.Debug(), "default log level is INFO")
	t.Assert(o.Workers() == runtime.NumCPU(), "0 workers means one per cpu, got %d", o.Workers())
	t.Assert(o.String() == "log=INFO swe=1 thr=0 class-version=65.0", "got %v", o)

	Default().Prefs[Threads] = "9"
	t.Assert(o.Prefs[Threads] == "0", "Default must hand out fresh maps")
}

func TestSet(t *testing.T) {
	o := Default()
	assert.NoError(t, o.Set(SwitchExpressions, "off"))
	assert.False(t, o.Bool(SwitchExpressions))
	assert.NoError(t, o.SetPair("swe = yes"))
	assert.True(t, o.Bool(SwitchExpressions))
	assert.NoError(t, o.Set(LogLevel, "debug"))
	assert.True(t, o.Debug())
	assert.NoError(t, o.SetPair("thr=3"))
	assert.Equal(t, 3, o.Workers())

	for _, bad := range [][2]string{
		{SwitchExpressions, "maybe"},
		{Threads, "-1"},
		{Threads, "many"},
		{LogLevel, "LOUD"},
		{"ren", "1"},
	} {
		assert.Error(t, o.Set(bad[0], bad[1]), "%v=%v", bad[0], bad[1])
	}
	assert.Error(t, o.SetPair("swe"))
	assert.Equal(t, "3", o.Prefs[Threads], "a rejected value leaves the preference alone")
}

func TestGate(t *testing.T) {
	cases := []struct {
		version bytecode.Version
		swe     string
		enabled bool
	}{
		{bytecode.Version{Major: bytecode.Major8}, "1", false},
		{bytecode.Version{Major: bytecode.Major11}, "1", false},
		{bytecode.Version{Major: bytecode.Major12}, "1", false},
		{bytecode.Version{Major: bytecode.Major12, Minor: bytecode.PreviewMinor}, "1", true},
		{bytecode.Version{Major: bytecode.Major13, Minor: bytecode.PreviewMinor}, "1", true},
		{bytecode.Version{Major: bytecode.Major14}, "1", true},
		{bytecode.Version{Major: bytecode.Major17}, "0", false},
		{bytecode.Latest, "1", true},
	}
	for _, c := range cases {
		o := Default()
		o.Version = c.version
		assert.NoError(t, o.Set(SwitchExpressions, c.swe))
		assert.Equal(t, c.enabled, o.SwitchExpressionsEnabled(), "%v swe=%v", c.version, c.swe)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("VINEFLOWER_SWE", "0")
	t.Setenv("VINEFLOWER_WORKERS", "2")
	t.Setenv("VINEFLOWER_CLASS_VERSION", "56.65535")
	o, err := Load()
	if !assert.NoError(t, err) {
		return
	}
	assert.False(t, o.Bool(SwitchExpressions))
	assert.Equal(t, 2, o.Workers())
	assert.Equal(t, bytecode.Version{Major: 56, Minor: bytecode.PreviewMinor}, o.Version)
	assert.Equal(t, "INFO", o.Prefs[LogLevel])

	// flags are applied after the environment
	assert.NoError(t, o.SetPair("swe=1"))
	assert.True(t, o.SwitchExpressionsEnabled())
}

func TestFromEnvRejects(t *testing.T) {
	t.Setenv("VINEFLOWER_LOG", "chatty")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("VINEFLOWER_LOG", "")
	t.Setenv("VINEFLOWER_CLASS_VERSION", "12")
	_, err = Load()
	assert.Error(t, err)
}
