// Command emsa1 encodes messages into prime field elements with EMSA1 and
// verifies claimed encodings.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/term"
)

var log = logging.Logger("emsa1/cmd")

// Environment is the process state commands read from and write to
type Environment struct {
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	StdinIsTerminal bool
}

var subcommands = map[string]Runner{
	"encode": EncodeCommand,
	"verify": VerifyCommand,
	"list":   ListCommand,
}

func printRootUsage(out io.Writer) {
	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "emsa1\n\n")
	fmt.Fprintf(out, "Encode messages into prime field elements with EMSA1.\n\n")
	fmt.Fprintf(out, "Usage:\n  emsa1 <subcommand> [options]\n  emsa1 <subcommand> help\n\n")
	fmt.Fprintf(out, "Subcommands:\n")
	for _, name := range names {
		fmt.Fprintf(out, "  %-8s %s\n", name, subcommands[name].Summary())
	}
}

func run(env *Environment, args []string) error {
	if len(args) == 0 {
		printRootUsage(env.Stderr)
		return fmt.Errorf("%w: missing subcommand", ErrPrintUsage)
	}
	if args[0] == "help" {
		printRootUsage(env.Stdout)
		return ErrPrintUsageGraceful
	}
	subcmd, ok := subcommands[args[0]]
	if !ok {
		printRootUsage(env.Stderr)
		return fmt.Errorf("%w: unknown subcommand %q", ErrPrintUsage, args[0])
	}
	return subcmd.Run(env, args[1:])
}

func main() {
	env := &Environment{
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		StdinIsTerminal: term.IsTerminal(int(os.Stdin.Fd())),
	}

	err := run(env, os.Args[1:])
	switch {
	case err == nil, errors.Is(err, ErrPrintUsageGraceful):
	case errors.Is(err, ErrMismatch):
		fmt.Fprintln(os.Stderr, "MISMATCH")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(2)
	}
}
