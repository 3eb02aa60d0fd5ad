package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "retrobridge",
	Short: "Overlay menu and command bridge for emulation cores",
	Long: `retrobridge hosts an emulation core, pauses it behind an overlay menu and
forwards the chosen command (save, load, reset, swap disk, quit) to the core.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to retrobridge.toml (defaults to $RETROBRIDGE_CONFIG, then ./retrobridge.toml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(commandsCmd)
}
