package main

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
)

// ErrMismatch is returned when the claimed value is not the encoding of the message
var ErrMismatch = errors.New("claimed value does not match message encoding")

type VerifyOptions struct {
	MessageOptions
	Value string
}

var VerifyCommand = &Command[VerifyOptions]{
	Name:        "emsa1 verify",
	Description: "Check that a decimal field element is the EMSA1 encoding of a message.",
	UsageExamples: []string{
		"emsa1 verify -field secp256r1 -hash SHA-256 -msg 'This is a tasty burger!' -value 1114747177...",
	},
	AddFlags: func(flags *flag.FlagSet, opts *VerifyOptions) {
		addMessageFlags(flags, &opts.MessageOptions)
		flags.StringVar(&opts.Value, "value", "", "Claimed encoding as a decimal integer.")
	},
	Execute: func(env *Environment, opts *VerifyOptions, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: unexpected arguments %q", ErrPrintUsage, args)
		}
		if opts.Value == "" {
			return fmt.Errorf("%w: -value is required", ErrPrintUsage)
		}
		claimed, ok := new(big.Int).SetString(opts.Value, 10)
		if !ok {
			return fmt.Errorf("%w: -value %q is not a decimal integer", ErrPrintUsage, opts.Value)
		}

		p, h, err := opts.resolve()
		if err != nil {
			return err
		}
		msg, err := opts.message(env)
		if err != nil {
			return err
		}

		match, err := p.verify(h, msg, claimed)
		if err != nil {
			return err
		}
		if !match {
			log.Debugw("verification failed", "field", p.field, "hash", h.Name())
			return ErrMismatch
		}

		fmt.Fprintln(env.Stdout, "OK")
		return nil
	},
}
