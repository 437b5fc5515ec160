package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/baowuhe/go-btime/util"
	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Show the birth time of a file or directory",
	Long:  `Read and print the birth time (creation time) and modification time of a file or directory.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		absPath, err := filepath.Abs(path)
		if err != nil {
			util.PrintError("Error resolving path %s: %v\n", path, err)
			os.Exit(1)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			util.PrintError("Error reading %s: %v\n", path, err)
			os.Exit(1)
		}

		birth, err := util.GetBirthTime(absPath)
		if err != nil {
			if errors.Is(err, util.ErrNoBirthTime) {
				util.PrintWarning("Birth time not available for %s\n", path)
			} else {
				util.PrintError("Error reading birth time: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("[√] Birth time: %s\n", birth.Format(time.RFC3339))
		}
		fmt.Printf("[√] Mod time:   %s\n", info.ModTime().UTC().Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
