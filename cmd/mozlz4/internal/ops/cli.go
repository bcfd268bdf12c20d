package ops

import "time"

var CLI struct {
	Decompress struct {
		Files  []string `optional:"" arg:"" type:"existingfile" help:"Snapshot files; stdin if omitted"`
		Output string   `help:"Output filename; use '-' for stdout" short:"o"`
		Force  bool     `help:"Force overwrite of existing file" short:"f"`
		Quiet  bool     `help:"Do not write progress to stdout" short:"q"`
	} `cmd:"" aliases:"d,decomp" help:"Decompress mozLz4 files"`
	Compress struct {
		File   string `optional:"" arg:"" type:"existingfile"`
		Output string `help:"Output filename; use '-' for stdout" short:"o"`
		Level  int    `help:"Compression level (1-10) [1 Fastest]" default:"1" short:"l"`
		Force  bool   `help:"Force overwrite of existing file" short:"f"`
		Quiet  bool   `help:"Do not write results to stdout" short:"q"`
	} `cmd:"" aliases:"c,comp" help:"Compress data into a mozLz4 file"`
	Verify struct {
		File string `optional:"" arg:"" type:"existingfile"`
		Skip bool   `help:"Check header only; skip decompress" short:"s"`
	} `cmd:"" aliases:"v,ver" help:"Verify a mozLz4 file against the reference decoder"`
	Bakeoff struct {
		File       string `arg:"" type:"existingfile"`
		Iterations int    `help:"Decode iterations per decoder" default:"20" short:"n"`
	} `cmd:"" aliases:"b,bake" help:"Compare decode speed to github.com/pierrec/lz4"`
	Session struct {
		Profile string        `arg:"" type:"existingdir" help:"Browser profile directory"`
		Output  string        `help:"Output filename; use '-' for stdout" short:"o" default:"-"`
		Force   bool          `help:"Force overwrite of existing file" short:"f"`
		Timeout time.Duration `help:"Give up after this long" default:"5s" env:"MOZLZ4_TIMEOUT"`
	} `cmd:"" aliases:"s" help:"Dump the most recent session snapshot of a profile"`
	Bookmarks struct {
		Profile string        `arg:"" type:"existingdir" help:"Browser profile directory"`
		Output  string        `help:"Output filename; use '-' for stdout" short:"o" default:"-"`
		Force   bool          `help:"Force overwrite of existing file" short:"f"`
		Timeout time.Duration `help:"Give up after this long" default:"5s" env:"MOZLZ4_TIMEOUT"`
	} `cmd:"" aliases:"bm" help:"Dump the newest bookmark backup of a profile"`

	Cpus    int   `help:"Concurrency [0 synchronous] [-1 auto]" default:"-1" short:"c" env:"MOZLZ4_CPUS"`
	MaxSize int64 `help:"Largest declared size to decode [0 unlimited]" default:"1073741824" env:"MOZLZ4_MAX_SIZE"`
	Verbose bool  `help:"Enable debug logging" short:"v" env:"MOZLZ4_VERBOSE"`
	LogJSON bool  `help:"Emit logs as JSON" name:"log-json" env:"MOZLZ4_LOG_JSON"`
}
