package cmd

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/getopt"
)

const unnamed = "<unnamed-action>"

type Runnable interface {
	Run(argv []string) ([]string, *Error)
	ShortOpts() string
	LongOpts() []string
	Name() string
	ShortUsage() string
	Usage() string
}

type Action func(r Runnable, args []string, optargs []getopt.OptArg) ([]string, *Error)

type Command struct {
	Action    Action
	shortOpts string
	longOpts  []string
	name      string
	shortMsg  string
	message   string
}

// Sequence runs its runners one after another, each on the arguments the
// previous one left over.
type Sequence struct {
	runners []Runnable
}

// Alternatives dispatches on the first argument.
type Alternatives struct {
	runners map[string]Runnable
}

func Cmd(name, shortMsg, msg, shortOpts string, longOpts []string, act Action) Runnable {
	return &Command{
		Action:    act,
		shortOpts: shortOpts,
		longOpts:  longOpts,
		name:      strings.TrimSpace(name),
		shortMsg:  strings.TrimSpace(shortMsg),
		message:   strings.TrimSpace(msg),
	}
}

func BareCmd(act Action) Runnable {
	return &Command{
		Action: act,
		name:   unnamed,
	}
}

func Concat(runners ...Runnable) Runnable {
	return &Sequence{runners: runners}
}

func Commands(runners map[string]Runnable) Runnable {
	return &Alternatives{runners: runners}
}

func (c *Command) Run(argv []string) ([]string, *Error) {
	args, optargs, err := getopt.GetOpt(argv, c.ShortOpts(), c.LongOpts())
	if err != nil {
		return nil, Usage(c, -1, "could not process args: %v", err)
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			return nil, Usage(c, 0)
		}
	}
	return c.Action(c, args, optargs)
}

func (c *Command) ShortOpts() string {
	if strings.Contains(c.shortOpts, "h") {
		return c.shortOpts
	}
	return c.shortOpts + "h"
}

func (c *Command) LongOpts() []string {
	for _, opt := range c.longOpts {
		if opt == "help" {
			return c.longOpts
		}
	}
	return append(append([]string(nil), c.longOpts...), "help")
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) ShortUsage() string {
	return fmt.Sprintf("%v %v", c.name, c.shortMsg)
}

func (c *Command) Usage() string {
	return c.message
}

func (s *Sequence) Run(argv []string) ([]string, *Error) {
	for _, r := range s.runners {
		var err *Error
		argv, err = r.Run(argv)
		if err != nil {
			return nil, err
		}
	}
	return argv, nil
}

func (s *Sequence) Name() string {
	return s.runners[0].Name()
}

func (s *Sequence) ShortOpts() string {
	return s.runners[0].ShortOpts()
}

func (s *Sequence) LongOpts() []string {
	return s.runners[0].LongOpts()
}

func (s *Sequence) ShortUsage() string {
	shorts := make([]string, 0, len(s.runners))
	for _, r := range s.runners {
		if r.Name() != unnamed {
			shorts = append(shorts, r.ShortUsage())
		}
	}
	return strings.Join(shorts, " ")
}

func (s *Sequence) Usage() string {
	longs := make([]string, 0, len(s.runners))
	for _, r := range s.runners {
		if u := r.Usage(); u != "" {
			longs = append(longs, u)
		}
	}
	return strings.Join(longs, "\n\n")
}

func (a *Alternatives) Run(argv []string) ([]string, *Error) {
	if len(argv) == 0 {
		if r, has := a.runners[""]; has {
			return r.Run(argv)
		}
		return nil, Usage(a, -1, "expected one of %v got end of arguments", a.Name())
	}
	r, has := a.runners[argv[0]]
	if !has {
		return nil, Usage(a, -1, "expected one of %v got %v", a.Name(), argv[0])
	}
	return r.Run(argv[1:])
}

func (a *Alternatives) keys() []string {
	keys := make([]string, 0, len(a.runners))
	for k := range a.runners {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (a *Alternatives) Name() string {
	optional := ""
	if _, has := a.runners[""]; has {
		optional = "?"
	}
	return fmt.Sprintf("(%v)%v", strings.Join(a.keys(), "|"), optional)
}

func (a *Alternatives) ShortOpts() string {
	return ""
}

func (a *Alternatives) LongOpts() []string {
	return nil
}

func (a *Alternatives) ShortUsage() string {
	return a.Name()
}

func (a *Alternatives) Usage() string {
	names := make([]string, 0, len(a.runners))
	longs := make([]string, 0, len(a.runners))
	for _, name := range a.keys() {
		r := a.runners[name]
		names = append(names, fmt.Sprintf("    %-15v", r.ShortUsage()))
		longs = append(longs, fmt.Sprintf("%v\n%v", r.ShortUsage(), indent(r.Usage(), 4)))
	}
	return fmt.Sprintf("Commands\n%v\n\n%v", strings.Join(names, "\n"), strings.Join(longs, "\n\n"))
}

func indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
