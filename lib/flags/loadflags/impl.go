package loadflags

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

func loadFlags(filename string, flagSet *flag.FlagSet) error {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 {
			continue
		}
		if line[0] == '#' || line[0] == ';' {
			continue
		}
		splitLine := strings.SplitN(line, "=", 2)
		if len(splitLine) < 2 {
			return errors.New("bad line, cannot split name from value: " + line)
		}
		name := strings.TrimSpace(splitLine[0])
		if strings.ContainsAny(name, " \t") {
			return errors.New("bad line, name has whitespace: " + line)
		}
		value := strings.TrimSpace(splitLine[1])
		if err := flagSet.Set(name, value); err != nil {
			return fmt.Errorf("%s:%d: %s", filename, lineNumber, err)
		}
	}
	return scanner.Err()
}
