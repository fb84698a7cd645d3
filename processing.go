package colorcode

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"time"
)

// createFile opens the report file sink
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func Processing(name string, c Config, console io.Writer) (report *Report, err error) {
	st := time.Now()
	if c.DebugMode {
		log.Printf("[>] Processing color %q", name)
		defer func() {
			log.Printf("[<] Processing color %q, at %s", name, time.Since(st))
		}()
	}

	rgb, err := Resolve(name)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(c.OutputDir, DefaultFolderPerm); err != nil {
		return nil, err
	}

	filepath := path.Join(c.OutputDir, fmt.Sprintf("%s.txt", name))
	f, err := createFile(filepath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", filepath, cerr)
			report = nil
		}
	}()

	report = &Report{
		Name:     name,
		RGB:      rgb,
		Entries:  Entries(name, rgb),
		Filepath: filepath,
	}

	if _, err = fmt.Fprintf(console, "\nThe RGB color code for %s is %s\n\n", name, rgb); err != nil {
		return nil, err
	}
	if err = Render(console, report.Entries); err != nil {
		return nil, err
	}
	if err = Render(f, report.Entries); err != nil {
		return nil, fmt.Errorf("write %s: %w", filepath, err)
	}
	if c.DebugMode {
		log.Printf("Wrote %d formats to %s", len(report.Entries), filepath)
	}

	if _, err = fmt.Fprintf(console, "\nResults have been saved to %s\n", filepath); err != nil {
		return nil, err
	}
	return report, nil
}
