package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/baowuhe/go-btime/data"
	"github.com/baowuhe/go-btime/util"
	"github.com/spf13/cobra"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [flags] [path]",
	Short: "Show recorded birth time changes",
	Long:  `List birth time changes recorded in the journal database, newest first. With a path argument, only changes for that path are shown.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("number")

		db, err := data.Connect()
		if err != nil {
			util.PrintError("Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		var records []*data.ChangeRecord
		if len(args) == 1 {
			absPath, err2 := filepath.Abs(args[0])
			if err2 != nil {
				util.PrintError("Error resolving path %s: %v\n", args[0], err2)
				os.Exit(1)
			}
			records, err = db.GetChangesByPath(absPath, limit)
		} else {
			records, err = db.GetAllChanges(limit)
		}
		if err != nil {
			util.PrintError("Error reading journal: %v\n", err)
			os.Exit(1)
		}

		if len(records) == 0 {
			util.PrintWarning("No recorded changes found\n")
			return
		}

		util.PrintProcess("%d recorded changes:\n", len(records))
		for _, record := range records {
			oldVal := "(unknown)"
			if record.OldTime != nil {
				oldVal = record.OldTime.UTC().Format(time.RFC3339)
			}
			fmt.Printf("  [%s] %s: %s -> %s\n",
				record.CreatedAt.UTC().Format(time.RFC3339),
				record.Path,
				oldVal,
				record.NewTime.UTC().Format(time.RFC3339))
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().IntP("number", "n", 20, "Maximum number of changes to show (0 for all)")
}
