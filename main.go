package main

import (
	"fmt"
	"os"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/jpenilla/vineflower/bytecode"
	"github.com/jpenilla/vineflower/cmd"
	"github.com/jpenilla/vineflower/config"
	"github.com/jpenilla/vineflower/switchexpr"
)

func main() {
	o, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var cleanup func()
	main := cmd.Concat(
		NewMain(o, &cleanup),
		cmd.Commands(map[string]cmd.Runnable{
			"switchexpr": switchexpr.NewCommand(o),
			"store":      bytecode.NewStoreCommand(),
			"options":    NewOptionsCommand(o),
		}),
	)
	args, cerr := main.Run(os.Args[1:])
	if cleanup != nil {
		cleanup()
	}
	if cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
		os.Exit(cerr.ExitCode)
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments %v\n", args)
		os.Exit(1)
	}
}

func NewMain(o *config.Options, cleanup *func()) cmd.Runnable {
	return cmd.Cmd(os.Args[0],
		`[options]`,
		`
Option Flags
    -h,--help                         Show this message
    -p,--cpu-profile=<path>           Path to write the cpu-profile
    -s,--set=<key>=<value>            Set a preference (see the options command)
    -c,--class-version=<major[.minor]> Class file version of the input methods
    -w,--workers=<n>                  Methods to process at once (0 = one per cpu)
    --debug                           Log every decision
`,
		"p:s:c:w:",
		[]string{
			"cpu-profile=",
			"set=",
			"class-version=",
			"workers=",
			"debug",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			cpuProfile := ""
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-p", "--cpu-profile":
					cpuProfile = oa.Arg()
				case "-s", "--set":
					if err := o.SetPair(oa.Arg()); err != nil {
						return nil, cmd.Usage(r, cmd.ExitUsage, "%v", err)
					}
				case "-c", "--class-version":
					v, err := bytecode.ParseVersion(oa.Arg())
					if err != nil {
						return nil, cmd.Usage(r, cmd.ExitUsage, "%v", err)
					}
					o.Version = v
				case "-w", "--workers":
					if err := o.Set(config.Threads, oa.Arg()); err != nil {
						return nil, cmd.Usage(r, cmd.ExitUsage, "%v", err)
					}
				case "--debug":
					o.Prefs[config.LogLevel] = "DEBUG"
				}
			}
			if cpuProfile != "" {
				stop, err := cmd.CPUProfile(cpuProfile)
				if err != nil {
					return nil, err
				}
				*cleanup = stop
			}
			return args, nil
		},
	)
}

func NewOptionsCommand(o *config.Options) cmd.Runnable {
	return cmd.Cmd(
		"options",
		``,
		`
Prints the preferences in effect after defaults, the environment
(VINEFLOWER_SWE, VINEFLOWER_LOG, VINEFLOWER_WORKERS,
VINEFLOWER_CLASS_VERSION) and the flags, and whether switch expressions
will be recovered.
`,
		"",
		[]string{},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			fmt.Println(o)
			fmt.Printf("switch expressions: %v\n", o.SwitchExpressionsEnabled())
			return args, nil
		},
	)
}
