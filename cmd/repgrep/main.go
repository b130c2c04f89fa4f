// Command repgrep is an interactive TUI for selecting and replacing matches
// from a searcher's JSON stream, in either Direct or Cached invocation mode
// (§6.2 of SPEC_FULL.md).
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/gdamore/tcell/v2"
	goerrors "github.com/pkg/errors"

	"github.com/acheronfail/repgrep-sub000/app"
	"github.com/acheronfail/repgrep-sub000/config"
	execstate "github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
	"github.com/acheronfail/repgrep-sub000/message"
	"github.com/acheronfail/repgrep-sub000/replace"
)

var version = "dev"

func init() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			version = fmt.Sprintf("%s (%s)", version, setting.Value)
		}
	}
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		exitWithError(err)
	}

	if flags.showVersion {
		fmt.Println(version)
		return
	}

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if flags.logPath != "" {
		logFile, err := os.Create(flags.logPath)
		if err != nil {
			exitWithError(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	rgCmdline, stream, encodingLabel, pattern, err := openStream(flags)
	if err != nil {
		exitWithError(err)
	}

	messages, err := message.Decode(stream, message.ProgressWriterForStderr())
	closeIfCloser(stream)
	if err != nil {
		exitWithError(err)
	}

	list := item.Build(messages)

	screen, err := tcell.NewScreen()
	if err != nil {
		exitWithError(err)
	}
	if err := screen.Init(); err != nil {
		exitWithError(err)
	}

	width, height := screen.Size()
	state := execstate.NewAppState(&list, rgCmdline, encodingLabel, pattern, width, height)

	cfg, err := config.LoadOrCreate()
	if err != nil {
		log.Printf("config: %v, using defaults", err)
	} else {
		state.PrintableStyle = item.ParsePrintableStyle(cfg.PrintableStyle)
		state.KeyOverrides = cfg.Keybindings
	}

	lifecycle := app.New(screen, state).Run()
	screen.Fini()

	switch lifecycle {
	case execstate.Cancelled:
		return
	case execstate.Complete:
		result, err := replace.Run(state.Criteria)
		if err != nil {
			exitWithError(err)
		}
		printSummary(result)
	}
}

type cliFlags struct {
	logPath     string
	showVersion bool
	cached      bool
	args        []string
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-log":
			i++
			if i >= len(args) {
				return f, goerrors.New("-log requires a value")
			}
			f.logPath = args[i]
		case "-version":
			f.showVersion = true
		case "-cached":
			f.cached = true
		default:
			rest = append(rest, args[i])
		}
	}
	f.args = rest
	return f, nil
}

// openStream resolves the invocation mode and returns the searcher command
// line for display, the JSON byte stream, the user-declared encoding label
// (always empty; reserved for a future -encoding flag), and the
// capture-group pattern hint.
func openStream(flags cliFlags) (rgCmdline string, stream io.Reader, encodingLabel, pattern string, err error) {
	if flags.cached {
		jsonPath := os.Getenv("RGR_JSON_FILE")
		if jsonPath == "" {
			return "", nil, "", "", goerrors.New("RGR_JSON_FILE must be set in -cached mode")
		}
		f, err := os.Open(jsonPath)
		if err != nil {
			return "", nil, "", "", goerrors.Wrapf(err, "open %s", jsonPath)
		}
		if len(flags.args) > 0 {
			pattern = flags.args[0]
		}
		return fmt.Sprintf("rg --json (cached: %s)", jsonPath), f, "", pattern, nil
	}

	rgArgs := append([]string{"--json"}, flags.args...)
	cmd := exec.Command("rg", rgArgs...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", nil, "", "", goerrors.Wrap(err, "open rg stdout pipe")
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return "", nil, "", "", goerrors.Wrap(err, "start rg")
	}
	return "rg " + strings.Join(rgArgs, " "), stdout, "", "", nil
}

func closeIfCloser(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}

func printSummary(result *replace.Result) {
	var filesChanged, submatchesReplaced, failures int
	for _, f := range result.Files {
		if len(f.Attempts) == 0 {
			continue
		}
		touched := false
		for _, a := range f.Attempts {
			if a.Success {
				submatchesReplaced++
				touched = true
			} else {
				failures++
				fmt.Fprintf(os.Stderr, "repgrep: %s: %s\n", f.Path, a.Reason)
			}
		}
		if touched {
			filesChanged++
		}
	}
	fmt.Printf("%d replacement(s) made across %d file(s)\n", submatchesReplaced, filesChanged)
	if failures > 0 {
		fmt.Printf("%d replacement(s) failed, see above\n", failures)
		os.Exit(1)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "repgrep: %v\n", err)
	os.Exit(1)
}
