package util

import (
	"fmt"
)

func printPrefixed(prefix, format string, args []interface{}) {
	if len(args) == 0 {
		fmt.Printf("%s%s\n", prefix, format)
		return
	}
	fmt.Printf(prefix+format, args...)
}

// PrintProcess prints process information with the "> " prefix
func PrintProcess(format string, args ...interface{}) {
	printPrefixed("> ", format, args)
}

// PrintSuccess prints success information with the "[√] " prefix
func PrintSuccess(format string, args ...interface{}) {
	printPrefixed("[√] ", format, args)
}

// PrintError prints error information with the "[×] " prefix
func PrintError(format string, args ...interface{}) {
	printPrefixed("[×] ", format, args)
}

// PrintWarning prints warning information with the "[!] " prefix
func PrintWarning(format string, args ...interface{}) {
	printPrefixed("[!] ", format, args)
}
