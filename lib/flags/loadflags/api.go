// Package loadflags sets command-line flag defaults from a configuration
// file. Each non-empty line is "name=value"; lines starting with '#' or ';'
// are comments. Flags given on the command line still win, since the file is
// loaded before flag.Parse.
package loadflags

import (
	"flag"
	"os"
	"path/filepath"
)

func LoadForCli(progName string) error {
	return loadFlags(
		filepath.Join(os.Getenv("HOME"), ".config", progName),
		flag.CommandLine)
}

func LoadForDaemon(progName string) error {
	return loadFlags(filepath.Join("/etc", progName), flag.CommandLine)
}

// LoadFromFile loads filename into flagSet. A missing file is not an error.
func LoadFromFile(filename string, flagSet *flag.FlagSet) error {
	return loadFlags(filename, flagSet)
}
