package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Print the command codes understood by cores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCommands(cmd.OutOrStdout())
	},
}

func printCommands(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCOMMAND")
	for _, c := range constants.Commands() {
		fmt.Fprintf(tw, "%d\t%s\n", c.Code(), c)
	}
	return tw.Flush()
}
