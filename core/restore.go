package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/baowuhe/go-btime/btime"
	"github.com/baowuhe/go-btime/data"
	"github.com/baowuhe/go-btime/util"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [flags] <path>",
	Short: "Restore the previous birth time of a file",
	Long:  `Look up the most recent journal entry for a file that recorded the prior birth time, and apply that value back.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")

		if err := restoreBirthTime(args[0], yes); err != nil {
			util.PrintError("%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().BoolP("yes", "y", false, "Apply without asking for confirmation")
}

func restoreBirthTime(path string, yes bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path %s: %v", path, err)
	}

	db, err := data.Connect()
	if err != nil {
		return fmt.Errorf("error connecting to database: %v", err)
	}
	defer db.Close()

	record, err := db.GetLatestRestorable(absPath)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.PrintWarning("No restorable journal entry for %s\n", path)
			return nil
		}
		return fmt.Errorf("error reading journal: %v", err)
	}

	target := record.OldTime.UTC()
	if !yes {
		ok, err := util.Confirm(fmt.Sprintf("Restore birth time of %s to %s?", path, target.Format(time.RFC3339)), false)
		if err != nil {
			return err
		}
		if !ok {
			util.PrintWarning("Restore cancelled\n")
			return nil
		}
	}

	var oldTime *time.Time
	if prev, err := util.GetBirthTime(absPath); err == nil {
		oldTime = &prev
	}

	if err := btime.SetTime(absPath, target); err != nil {
		return err
	}
	util.PrintSuccess("Birth time of %s restored to %s\n", path, target.Format(time.RFC3339))

	return db.AddChange(&data.ChangeRecord{
		Key:     util.PathKey(absPath),
		Path:    absPath,
		OldTime: oldTime,
		NewTime: target,
	})
}
