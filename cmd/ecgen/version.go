package main

import (
	"fmt"
	"runtime/debug"
)

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("ecgen %s\n", version)
}
