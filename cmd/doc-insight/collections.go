package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doc-insight/internal/collection"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List the collections under the base directory",
	Long: `Collections lists every directory under the base directory that holds
an input descriptor and a PDF subdirectory, with its document count and
whether an analysis artifact already exists.`,
	RunE: runCollections,
}

func runCollections(cmd *cobra.Command, args []string) error {
	layout := layoutFromFlags(cmd)

	infos, err := collection.Discover(layout)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Printf("No collections found in %s\n", layout.BaseDir)
		return nil
	}

	fmt.Printf("%-30s  %-10s  %s\n", "Collection", "Documents", "Results")
	for _, info := range infos {
		results := "-"
		if info.HasResults {
			results = "yes"
		}
		fmt.Printf("%-30s  %-10d  %s\n", info.Name, info.Documents, results)
	}
	fmt.Printf("\n%d collections\n", len(infos))
	return nil
}

func init() {
	collectionsCmd.Flags().String("base-dir", "", "directory containing collections")
	collectionsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(collectionsCmd)
}
