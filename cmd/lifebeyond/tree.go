package main

import (
	"fmt"
	"os"

	lifebeyond "github.com/Devanik21/Life-Beyond-sub000"
	"github.com/Devanik21/Life-Beyond-sub000/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Export the tree of life visualization",
	Long: `Prints a Mermaid diagram (graph TD) of the museum's speculative tree of
life. With --trait, every clade that independently evolved the trait is
highlighted, making convergent inventions visible.`,
	Run: func(cmd *cobra.Command, args []string) {
		wingsDir, _ := cmd.Flags().GetString("wings-dir")
		trait, _ := cmd.Flags().GetString("trait")

		museum, err := lifebeyond.Open(wingsDir)
		if err != nil {
			fmt.Printf("Error opening museum: %v\n", err)
			os.Exit(1)
		}

		tree := museum.Tree()

		var overlay *graph.Overlay
		if trait != "" {
			ids := tree.WithTrait(trait)
			if len(ids) == 0 {
				fmt.Printf("No clade carries trait %q\n", trait)
				os.Exit(1)
			}
			overlay = &graph.Overlay{HighlightIDs: ids}
		}

		// Generate and print Mermaid graph
		output := graph.GenerateMermaid(tree, overlay)
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().String("trait", "", "Highlight clades carrying this trait")
}
