package main

import (
	"fmt"
	"os"

	"github.com/Devanik21/Life-Beyond-sub000/internal/cli"
	"github.com/spf13/cobra"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <chart-id>",
	Short: "Render a single chart",
	Long: `Builds a chart from its catalog descriptor and writes it through the
selected surface: json (Plotly-style figure), png, or txt (terminal summary).

Default parameters can be overridden with repeated --set key=value flags:

  lifebeyond render ember-dunes --set seed=99 --set gravity=high`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := gatherOptions(cmd)
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.Out, _ = cmd.Flags().GetString("out")
		opts.Set, _ = cmd.Flags().GetStringArray("set")

		if err := cli.RunRender(opts, args[0]); err != nil {
			fmt.Printf("Error rendering chart: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("format", "f", envDefaults.Format, "Render surface: json, png or txt")
	renderCmd.Flags().StringP("out", "o", "", "Output file (default stdout, required for png)")
	renderCmd.Flags().StringArray("set", nil, "Override a chart parameter (key=value, repeatable)")
}
