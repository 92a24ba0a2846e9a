package main

import (
	"fmt"
	"os"

	"github.com/Devanik21/Life-Beyond-sub000/internal/cli"
	"github.com/spf13/cobra"
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Export the whole museum to a directory",
	Long: `Walks every wing and writes its placard plus every rendered chart into
an output directory, one subdirectory per wing.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := gatherOptions(cmd)
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Out, _ = cmd.Flags().GetString("out")

		if err := cli.RunTour(opts); err != nil {
			fmt.Printf("Error touring museum: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tourCmd)

	tourCmd.Flags().StringP("out", "o", "museum", "Output directory")
	tourCmd.Flags().StringP("format", "f", envDefaults.Format, "Render surface: json, png or txt")
}
