// Command oko is the front-end driver: it reads a file named `code` from
// the working directory, compiles it, and on success prints the baked
// module; on failure it prints a diagnostic and exits non-zero.
package main

import (
	"fmt"
	"os"

	"github.com/oko-lang/oko/internal/compile"
	"github.com/oko-lang/oko/internal/diag"
)

const sourceFilename = "code"

func main() {
	debugLog("oko started\n")

	src, err := os.ReadFile(sourceFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read %s: %v\n", sourceFilename, err)
		os.Exit(1)
	}

	module, d := compile.Compile(sourceFilename, string(src))
	if d != nil {
		formatter.Format(os.Stderr, *d)
		os.Exit(1)
	}

	fmt.Println(module.Format())
}

var formatter = diag.NewFormatter()

func debugLog(format string, a ...interface{}) {
	if os.Getenv("OKO_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format, a...)
	}
}
