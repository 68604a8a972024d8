// Command physconst prints physical constants and converts between
// temperature scales and energy units.
//
// Usage:
//
//	physconst [command]
//
// Available Commands:
//
//	convert     Convert a temperature or an energy
//	get         Show one or more constants
//	list        List physical constants
//	version     Print the version
//
// Flags:
//
//	    --color string       Style table output: auto, always or never (default "auto")
//	-c, --config strings     Path(s) to config file/directory
//	-o, --format format      Output format: table, plain, json or yaml (default table)
//	    --log-level level    Log level (default WARN)
//	-p, --precision int      Significant digits (default 10)
//	    --si                 Print values with SI prefixes
package main

import (
	"fmt"
	"os"
)

func main() {
	root := NewRootCommand()
	if c, err := root.ExecuteC(); err != nil {
		runCleanup()
		c.PrintErrln("Error:", err)
		os.Exit(exitCode(err))
	}
}

func usageError(format string, args ...any) error {
	return &ExitError{Err: fmt.Errorf(format, args...), Code: 1}
}
