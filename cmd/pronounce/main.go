package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/pronounce/internal/cli"
	"codeberg.org/snonux/pronounce/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// An output directory from the config file applies unless -o was given
	if !cmd.Flags().Changed("output-dir") {
		if dir := viper.GetString("output.directory"); dir != "" {
			flags.OutputDir = dir
		}
	}

	// Create processor and run the query
	proc := processor.NewProcessor(flags)
	if err := proc.ProcessQuery(args[0]); err != nil {
		return err
	}

	fmt.Printf("\nDone! Audio saved to: %s\n", flags.OutputDir)
	return nil
}
