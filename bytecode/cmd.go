package bytecode

import (
	"fmt"
	"strconv"
)

import (
	"github.com/timtadh/getopt"
)

import (
	"github.com/jpenilla/vineflower/cmd"
)

func NewStoreCommand() cmd.Runnable {
	return cmd.Cmd(
		"store",
		`[options] <kind> <index>...`,
		`
Encodes local variable stores and prints each instruction with its
length and bytes. <kind> is one of i, l, f, d, a (or istore, ...).

Option Flags
    -h,--help                         Show this message
    -w,--wide                         Use the wide prefix for indices above 3
`,
		"w",
		[]string{
			"wide",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			wide := false
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-w", "--wide":
					wide = true
				}
			}
			if len(args) < 2 {
				return nil, cmd.Usage(r, cmd.ExitUsage, "expected a kind and at least one index got %v", args)
			}
			kind, err := ParseStoreKind(args[0])
			if err != nil {
				return nil, cmd.Usage(r, cmd.ExitUsage, "%v", err)
			}
			for _, arg := range args[1:] {
				index, err := strconv.Atoi(arg)
				if err != nil {
					return nil, cmd.Errorf(cmd.ExitUsage, "could not parse index %v: %v", arg, err)
				}
				s := &Store{Kind: kind, Index: index, Wide: wide}
				code, err := s.Bytes()
				if err != nil {
					return nil, cmd.Err(cmd.ExitFailed, err)
				}
				fmt.Printf("%-16v %d  % x\n", s, s.Length(), code)
			}
			return nil, nil
		})
}
