package main

import (
	"fmt"
	"os"

	"github.com/Devanik21/Life-Beyond-sub000/internal/cli"
	"github.com/spf13/cobra"
)

var envDefaults = cli.LoadConfig()

var rootCmd = &cobra.Command{
	Use:   "lifebeyond",
	Short: "Life Beyond is an interactive museum of speculative astrobiology",
	Long: `Life Beyond turns a few physical dials (gravity, starlight, chemistry)
into charts of what living things might look like elsewhere.

Browse the wings, render individual charts, or export the whole museum.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands). LIFEBEYOND_* environment
	// variables provide the defaults.
	rootCmd.PersistentFlags().String("wings-dir", envDefaults.WingsDir, "Directory with extra wing markdown files")
	rootCmd.PersistentFlags().Bool("debug", envDefaults.Debug, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("no-color", envDefaults.NoColor, "Disable colored output")
}

// gatherOptions collects the persistent flags shared by every command.
func gatherOptions(cmd *cobra.Command) cli.Options {
	wingsDir, _ := cmd.Flags().GetString("wings-dir")
	debug, _ := cmd.Flags().GetBool("debug")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return cli.Options{
		WingsDir: wingsDir,
		Debug:    debug,
		NoColor:  noColor,
	}
}
