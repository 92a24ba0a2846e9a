package main

import (
	"fmt"
	"os"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [wings-dir]",
	Short: "Check the wing catalog for consistency",
	Long: `Loads the embedded wings plus any extra wings directory and reports
duplicate IDs, unknown generators, and charts whose default parameters
fail to build.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	wingsDir, _ := cmd.Flags().GetString("wings-dir")
	if !cmd.Flags().Changed("wings-dir") && len(args) > 0 {
		wingsDir = args[0]
	}

	museum, err := lifebeyond.Open(wingsDir)
	if err != nil {
		return err
	}

	charts := 0
	for _, w := range museum.Wings() {
		charts += len(w.Charts)
	}
	fmt.Printf("Checked %d wings, %d charts.\n", len(museum.Wings()), charts)
	return nil
}
