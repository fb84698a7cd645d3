package main

import (
	"errors"
	"fmt"
	"github.com/brandquad/colorcode"
	"github.com/kelseyhightower/envconfig"
	"io"
	"log"
	"os"
)

type Config struct {
	OutputDir string `envconfig:"COLORCODE_OUTPUT_DIR" default:"output"`
	DebugMode bool   `envconfig:"COLORCODE_DEBUG" default:"false"`
}

func (c Config) MakeConfig() colorcode.Config {
	return colorcode.Config{
		OutputDir: c.OutputDir,
		DebugMode: c.DebugMode,
	}
}

// run returns the process exit code. Unknown color names are reported
// but still exit 0.
func run(args []string, c Config, stdout io.Writer) (int, error) {
	if len(args) != 1 {
		fmt.Fprintln(stdout, "Usage: colorcode <color>")
		return 1, nil
	}

	name := args[0]
	if _, err := colorcode.Processing(name, c.MakeConfig(), stdout); err != nil {
		if errors.Is(err, colorcode.ErrColorNotDefined) {
			fmt.Fprintf(stdout, "Color '%s' is not defined in the named color table.\n", name)
			return 0, nil
		}
		return 1, err
	}
	return 0, nil
}

func main() {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Fatalln(err)
	}

	// Arguments are taken verbatim; a leading dash is part of the color name.
	code, err := run(os.Args[1:], c, os.Stdout)
	if err != nil {
		log.Fatalln(err)
	}
	os.Exit(code)
}
