package switchexpr

import (
	"context"
	"fmt"
)

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/jpenilla/vineflower/cmd"
	"github.com/jpenilla/vineflower/config"
	"github.com/jpenilla/vineflower/stmt"
)

func NewCommand(o *config.Options) cmd.Runnable {
	return cmd.Cmd(
		"switchexpr",
		`[options] <graphs>`,
		`
Rewrites the switch statements that compute a value into switch
expressions. <graphs> is a .dot file (optionally gzip'd), a directory of
them or - for stdin; each digraph is the statement graph of one method.

Option Flags
    -h,--help                         Show this message
    -o,--output=<path>                Where to write the rewritten graphs (default stdout)
    -t,--text                         Write an indented dump instead of dot
    --progress                        Show a progress bar while rewriting
`,
		"o:t",
		[]string{
			"output=",
			"text",
			"progress",
		},
		func(r cmd.Runnable, args []string, optargs []getopt.OptArg) ([]string, *cmd.Error) {
			output := ""
			text := false
			progress := false
			for _, oa := range optargs {
				switch oa.Opt() {
				case "-o", "--output":
					output = oa.Arg()
				case "-t", "--text":
					text = true
				case "--progress":
					progress = true
				}
			}
			if len(args) != 1 {
				return nil, cmd.Usage(r, cmd.ExitUsage, "expected one graph source got %v", args)
			}

			reader, closeall, err := cmd.Input(args[0])
			if err != nil {
				return nil, cmd.Err(cmd.ExitInput, err)
			}
			graphs, err := stmt.LoadDot(reader)
			closeall()
			if err != nil {
				return nil, cmd.Errorf(cmd.ExitInput, "could not load %v: %v", args[0], err)
			}
			if o.Debug() {
				errors.Logf("DEBUG", "loaded %d graphs, options: %v", len(graphs), o)
			}

			var done func(*stmt.Graph)
			if progress {
				bar := pb.StartNew(len(graphs))
				defer bar.Finish()
				done = func(*stmt.Graph) {
					bar.Increment()
				}
			}
			report, err := RunAll(context.Background(), o, graphs, done)
			if err != nil {
				return nil, cmd.Err(cmd.ExitFailed, err)
			}

			w, closeOut, err := cmd.Output(output)
			if err != nil {
				return nil, cmd.Err(cmd.ExitOutput, err)
			}
			if text {
				for _, g := range graphs {
					if _, err = fmt.Fprintln(w, g); err != nil {
						break
					}
				}
			} else {
				err = stmt.WriteDot(w, graphs...)
			}
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			if err != nil {
				return nil, cmd.Err(cmd.ExitOutput, err)
			}
			errors.Logf("INFO", "%v", report)
			return nil, nil
		})
}
