package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/aerius-labs/pkpad-go/digest"
)

var ErrNoMessage = errors.New("no message: use -msg, -hex, or pipe data on stdin")

// MessageOptions are the flags shared by encode and verify
type MessageOptions struct {
	Field string
	Hash  string
	Text  string
	Hex   string
}

func (opts *MessageOptions) message(env *Environment) ([]byte, error) {
	switch {
	case opts.Text != "" && opts.Hex != "":
		return nil, fmt.Errorf("%w: -msg and -hex are mutually exclusive", ErrPrintUsage)
	case opts.Text != "":
		return []byte(opts.Text), nil
	case opts.Hex != "":
		msg, err := hex.DecodeString(opts.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid -hex value: %s", ErrPrintUsage, err)
		}
		return msg, nil
	case env.StdinIsTerminal:
		return nil, ErrNoMessage
	}

	msg, err := io.ReadAll(env.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	log.Debugw("read message from stdin", "bytes", len(msg))
	return msg, nil
}

func (opts *MessageOptions) resolve() (pairing, digest.Algorithm, error) {
	p, err := lookupField(opts.Field)
	if err != nil {
		return pairing{}, nil, err
	}
	h, err := digest.Lookup(opts.Hash)
	if err != nil {
		return pairing{}, nil, fmt.Errorf("%w: %s", ErrPrintUsage, err)
	}
	return p, h, nil
}
