// Command lsms-lattice reduces crystal lattices and answers minimum-image
// distance queries for structures described in YAML.
package main

import (
	"fmt"
	"os"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lsms-lattice: %v\n", err)
		os.Exit(1)
	}
}
