package main

import (
	"fmt"

	"github.com/aerius-labs/pkpad-go/digest"
)

type ListOptions struct{}

var ListCommand = &Command[ListOptions]{
	Name:        "emsa1 list",
	Description: "Print the supported fields and hash algorithms.",
	Execute: func(env *Environment, _ *ListOptions, _ []string) error {
		fmt.Fprintln(env.Stdout, "Fields:")
		for _, name := range fieldNames() {
			fmt.Fprintf(env.Stdout, "  %-10s %3d bits\n", name, pairings[name].bits)
		}

		fmt.Fprintln(env.Stdout, "Hashes:")
		for _, h := range digest.All {
			fmt.Fprintf(env.Stdout, "  %-11s %3d bits\n", h.Name(), 8*h.Size())
		}
		return nil
	},
}
