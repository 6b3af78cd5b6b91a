// internal/cli/options.go
package cli

import (
	"strings"

	arg "github.com/alexflint/go-arg"

	"prle/internal/errs"
	"prle/internal/fileio"
	"prle/internal/pipeline"
	"prle/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Mode  string `arg:"positional" help:"operation: compress | decompress"`
	Input string `arg:"positional" help:"input file ('-' for stdin)"`

	Output  string `arg:"-o" help:"output file ('-' for stdout) [compressed.txt | decompressed.txt]"`
	Threads int    `arg:"-t,env:PRLE_THREADS" help:"number of worker threads (0 = all CPUs)"`

	Interactive bool `arg:"-i" help:"prompt for file name, threads and operation"`
	Quiet       bool `arg:"-q" help:"suppress the run report"`
	Verbose     bool `arg:"-v" help:"log per-chunk debug events"`
}

// Description is shown at the top of --help.
func (Options) Description() string {
	return "prle: parallel run-length encoding codec\n"
}

// Version is printed by --version.
func (Options) Version() string { return "prle version " + version.Version }

// Parsed is the result of ParseArgs: validated options plus the parser,
// which callers need to print help or usage.
type Parsed struct {
	Options
	Parser *arg.Parser
	// ModeValue is the parsed Mode; zero when Interactive defers it.
	ModeValue pipeline.Mode
}

// ParseArgs parses argv and validates the result. On arg.ErrHelp and
// arg.ErrVersion it returns those errors unwrapped so callers can branch.
func ParseArgs(argv []string) (Parsed, error) {
	var p Parsed
	parser, err := arg.NewParser(arg.Config{Program: "prle"}, &p.Options)
	if err != nil {
		return p, err
	}
	p.Parser = parser
	if err := parser.Parse(argv); err != nil {
		return p, err
	}
	if err := p.validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (p *Parsed) validate() error {
	if p.Threads < 0 {
		return errs.InvalidArgumentf("--threads must be ≥ 0")
	}
	if p.Output != "" && strings.TrimSpace(p.Output) == "" {
		return errs.InvalidArgumentf("--output must not be blank")
	}
	if p.Interactive {
		if p.Mode != "" || p.Input != "" {
			return errs.InvalidArgumentf("--interactive takes no positional arguments")
		}
		if p.Threads != 0 {
			return errs.InvalidArgumentf("--interactive asks for the thread count; drop --threads")
		}
		if p.Output == fileio.StdioPath {
			return errs.InvalidArgumentf("--interactive cannot write output to stdout")
		}
		return nil
	}
	if p.Mode == "" {
		return errs.InvalidArgumentf("operation is required (compress | decompress)")
	}
	if p.Input == "" {
		return errs.InvalidArgumentf("input file is required")
	}
	m, err := pipeline.ParseMode(p.Mode)
	if err != nil {
		return err
	}
	p.ModeValue = m
	return nil
}
