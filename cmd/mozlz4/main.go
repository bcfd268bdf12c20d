package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/prequel-dev/mozlz4/cmd/mozlz4/internal/ops"
)

func main() {

	var (
		errS string
		kctx = kong.Parse(
			&ops.CLI,
			kong.Name("mozlz4"),
			kong.Description("Decode Firefox mozLz4 session and bookmark snapshots"),
		)
	)

	ops.SetupLogging()

	switch cmd := strings.Fields(kctx.Command())[0]; cmd {
	case "decompress":
		if err := ops.RunDecompress(); err != nil {
			errS = fmt.Sprintf("fail decompress: %v", err)
		}
	case "compress":
		if err := ops.RunCompress(); err != nil {
			errS = fmt.Sprintf("fail compress: %v", err)
		}
	case "verify":
		if err := ops.RunVerify(); err != nil {
			errS = fmt.Sprintf("fail verify: %v", err)
		}
	case "bakeoff":
		if err := ops.RunBakeoff(); err != nil {
			errS = fmt.Sprintf("fail bakeoff: %v", err)
		}
	case "session":
		if err := ops.RunSession(); err != nil {
			errS = fmt.Sprintf("fail session: %v", err)
		}
	case "bookmarks":
		if err := ops.RunBookmarks(); err != nil {
			errS = fmt.Sprintf("fail bookmarks: %v", err)
		}
	default:
		errS = fmt.Sprintf("unknown command '%s'", cmd)
	}

	if errS != "" {
		fmt.Fprintf(os.Stderr, "mozlz4: %s\n", errS)
		os.Exit(1)
	}
}
