package main

import (
	"fmt"
	"strings"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lifebeyond",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lifebeyond version %s\n", strings.TrimSpace(lifebeyond.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
