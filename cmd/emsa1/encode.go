package main

import (
	"flag"
	"fmt"
)

func addMessageFlags(flags *flag.FlagSet, opts *MessageOptions) {
	flags.StringVar(&opts.Field, "field", "secp256r1", "Target prime field (see 'emsa1 list').")
	flags.StringVar(&opts.Hash, "hash", "SHA-256", "Hash algorithm (see 'emsa1 list').")
	flags.StringVar(&opts.Text, "msg", "", "Message text. Read from stdin if neither -msg nor -hex is given.")
	flags.StringVar(&opts.Hex, "hex", "", "Message as hex-encoded bytes.")
}

var EncodeCommand = &Command[MessageOptions]{
	Name:        "emsa1 encode",
	Description: "Hash a message and print its EMSA1 encoding as a decimal field element.",
	UsageExamples: []string{
		"emsa1 encode -field secp256r1 -hash SHA-256 -msg 'This is a tasty burger!'",
		"emsa1 encode -field bls12_381 -hash SHA-1 -hex 0000000001",
		"cat document.pdf | emsa1 encode -field secp384r1 -hash SHA-512",
	},
	AddFlags: addMessageFlags,
	Execute: func(env *Environment, opts *MessageOptions, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: unexpected arguments %q", ErrPrintUsage, args)
		}

		p, h, err := opts.resolve()
		if err != nil {
			return err
		}
		msg, err := opts.message(env)
		if err != nil {
			return err
		}

		value, err := p.encode(h, msg)
		if err != nil {
			return err
		}
		log.Debugw("encoded message", "field", p.field, "hash", h.Name(), "bytes", len(msg))

		fmt.Fprintln(env.Stdout, value.String())
		return nil
	},
}
