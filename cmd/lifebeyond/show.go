package main

import (
	"fmt"
	"os"

	"github.com/Devanik21/Life-Beyond-sub000/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <wing-id>",
	Short: "Show a wing placard",
	Long:  `Renders a wing's narrative placard and chart index for the terminal.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.RunShow(gatherOptions(cmd), args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
