package core

import (
	"github.com/baowuhe/go-btime/util"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "btime",
	Short:             "File Birth Time Toolkit",
	Long:              `A command-line tool for setting and inspecting file birth times (creation timestamps).`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of btime.`,
	Run: func(cmd *cobra.Command, args []string) {
		util.PrintSuccess("btime v0.1.0")
	},
}
