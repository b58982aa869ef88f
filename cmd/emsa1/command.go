package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"
)

var (
	ErrPrintUsage         = errors.New("incorrect usage")
	ErrPrintUsageGraceful = errors.New("usage requested")
)

type Runner interface {
	Run(env *Environment, args []string) error
	Summary() string
}

// Command is a subcommand whose flags are parsed into Options
type Command[Options any] struct {
	Name          string
	Description   string
	UsageExamples []string
	AddFlags      func(*flag.FlagSet, *Options)
	Execute       func(env *Environment, opts *Options, positionalArgs []string) error
}

func (cmd *Command[Options]) Run(env *Environment, args []string) error {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var input Options
	if cmd.AddFlags != nil {
		cmd.AddFlags(flags, &input)
	}
	var debug bool
	flags.BoolVar(&debug, "debug", false, "Enable debug logging.")

	usage := func(out io.Writer) {
		fmt.Fprintf(out, "%s\n\n", cmd.Name)
		if cmd.Description != "" {
			fmt.Fprintf(out, "%s\n\n", cmd.Description)
		}
		if len(cmd.UsageExamples) > 0 {
			fmt.Fprintf(out, "Usage:\n")
			for _, line := range cmd.UsageExamples {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintf(out, "\n")
		}
		fmt.Fprintf(out, "Options:\n")
		flags.SetOutput(out)
		flags.PrintDefaults()
	}

	if len(args) == 1 && args[0] == "help" {
		usage(env.Stdout)
		return ErrPrintUsageGraceful
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(env.Stdout)
			return ErrPrintUsageGraceful
		}
		usage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrPrintUsage, err)
	}

	if debug {
		if err := logging.SetLogLevel("emsa1", "debug"); err != nil {
			return err
		}
		if err := logging.SetLogLevel("emsa1/cmd", "debug"); err != nil {
			return err
		}
	}

	err := cmd.Execute(env, &input, flags.Args())
	if errors.Is(err, ErrPrintUsage) {
		usage(env.Stderr)
	}
	return err
}

// Summary returns the one-line description shown by 'emsa1 help'
func (cmd *Command[Options]) Summary() string {
	return cmd.Description
}
