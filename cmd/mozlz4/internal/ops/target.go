package ops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prequel-dev/mozlz4"
)

const (
	strStdin   = "<STDIN>"
	strStdout  = "-"
	jsonExt    = ".json"
	jsonlz4Ext = ".jsonlz4"
	mozlz4Ext  = ".mozlz4"
	dstPerms   = 0600
	dstFlags   = os.O_CREATE | os.O_RDWR | os.O_TRUNC
)

// Container extension to decoded extension.
var decodedExts = []struct{ from, to string }{
	{jsonlz4Ext, jsonExt},
	{".baklz4", ".bak" + jsonExt},
	{mozlz4Ext, ""},
}

// Derive the destination filename for 'name'.
func outputName(compress bool, name, output string) (string, error) {
	if output != "" {
		return output, nil
	}

	if compress {
		switch {
		case name == "" || name == "-":
			return "out" + jsonlz4Ext, nil
		case strings.HasSuffix(name, jsonExt):
			return strings.TrimSuffix(name, jsonExt) + jsonlz4Ext, nil
		default:
			return name + mozlz4Ext, nil
		}
	}

	for _, e := range decodedExts {
		if base, ok := strings.CutSuffix(name, e.from); ok && base != "" {
			return base + e.to, nil
		}
	}

	return "", fmt.Errorf("cannot determine an output filename for '%s'", name)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return (err == nil) || !errors.Is(err, os.ErrNotExist)
}

func checkOverwrite(name string, force bool) error {
	if name != strStdout && fileExists(name) && !force {
		return fmt.Errorf("output file '%s' already exists", name)
	}
	return nil
}

// Slurp 'name', or stdin when unset.  Returns the data and a display name.
func readInput(name string) ([]byte, string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, strStdin, err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, name, fmt.Errorf("cannot open source '%s': %w", name, err)
	}
	return data, name, nil
}

func writeOutput(name string, data []byte) error {
	if name == strStdout {
		_, err := os.Stdout.Write(data)
		return err
	}

	fh, err := os.OpenFile(name, dstFlags, dstPerms)
	if err != nil {
		return fmt.Errorf("fail create output file '%s': %w", name, err)
	}

	if _, err := fh.Write(data); err != nil {
		fh.Close()
		return fmt.Errorf("fail write output file '%s': %w", name, err)
	}

	return fh.Close()
}

func decodeOpts() []mozlz4.OptT {
	return []mozlz4.OptT{
		mozlz4.WithMaxSize(CLI.MaxSize),
	}
}
