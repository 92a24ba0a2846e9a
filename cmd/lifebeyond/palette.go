package main

import (
	"fmt"

	"github.com/Devanik21/Life-Beyond-sub000/internal/cli"
	"github.com/Devanik21/Life-Beyond-sub000/internal/presentation/tui"
	"github.com/Devanik21/Life-Beyond-sub000/pkg/params"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Preview the garden color palettes",
	Long:  `Prints the sky, ground and flora colors of every garden biome as terminal swatches.`,
	Run: func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		cli.ConfigureColor(noColor)

		for _, kind := range params.GardenKinds() {
			fmt.Printf("%s (%s)\n", kind.Label(), kind)
			fmt.Print(tui.PaletteSwatches(kind.Palette()))
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
