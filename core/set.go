package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/baowuhe/go-btime/btime"
	"github.com/baowuhe/go-btime/data"
	"github.com/baowuhe/go-btime/util"
	"github.com/spf13/cobra"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set [flags] <path> <time>",
	Short: "Set the birth time of a file or directory",
	Long: `Set the birth time (creation time) of a file or directory.

The time can be given as Unix seconds (e.g. 1672531200) or as an RFC3339
timestamp (e.g. 2023-01-01T00:00:00Z). On Windows and macOS the new value
is written to the filesystem metadata; on Linux the call succeeds without
changing anything, because the kernel offers no way to set it.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		when, err := util.ParseTimestamp(args[1])
		if err != nil {
			util.PrintError("Invalid time value: %v\n", err)
			os.Exit(1)
		}

		if err := applyBirthTime(args[0], when, noJournal); err != nil {
			util.PrintError("%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolP("no-journal", "J", false, "Do not record the change in the journal database")
}

func applyBirthTime(path string, when time.Time, noJournal bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path %s: %v", path, err)
	}

	// Capture the current value before changing it so restore can revert.
	// Not every platform/filesystem can read it; a nil oldTime is recorded
	// in that case.
	var oldTime *time.Time
	if prev, err := util.GetBirthTime(absPath); err == nil {
		oldTime = &prev
	}

	if err := btime.SetTime(absPath, when); err != nil {
		return err
	}
	util.PrintSuccess("Birth time of %s set to %s\n", path, when.Format(time.RFC3339))

	if noJournal {
		return nil
	}

	db, err := data.Connect()
	if err != nil {
		return fmt.Errorf("error connecting to database: %v", err)
	}
	defer db.Close()

	record := &data.ChangeRecord{
		Key:     util.PathKey(absPath),
		Path:    absPath,
		OldTime: oldTime,
		NewTime: when,
	}
	if err := db.AddChange(record); err != nil {
		return fmt.Errorf("error recording change: %v", err)
	}

	return nil
}
