package main

import (
	"fmt"
	"os"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	"github.com/spf13/cobra"
)

var wingsCmd = &cobra.Command{
	Use:   "wings",
	Short: "List the wings of the museum",
	Long:  `Prints every wing in tour order with its identifier and chart count.`,
	Run: func(cmd *cobra.Command, args []string) {
		wingsDir, _ := cmd.Flags().GetString("wings-dir")

		museum, err := lifebeyond.Open(wingsDir)
		if err != nil {
			fmt.Printf("Error opening museum: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Wings:")
		for i, w := range museum.Wings() {
			fmt.Printf("%2d. %-14s %-28s %d charts\n", i+1, w.ID, w.Title, len(w.Charts))
		}
	},
}

func init() {
	rootCmd.AddCommand(wingsCmd)
}
