package main

import (
	"os"

	"github.com/baowuhe/go-btime/core"
	"github.com/baowuhe/go-btime/util"
)

func main() {
	if err := core.Execute(); err != nil {
		util.PrintError("%v", err)
		os.Exit(1)
	}
}
