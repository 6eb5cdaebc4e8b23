// Command weavec is the command-line front end for the Weave lexer
// toolchain: lex a file and inspect its tokens or diagnostics, run the
// formatter/linter/cross-referencer, or start the interactive debugger,
// desktop GUI, or HTTP API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lookbusy1344/weave/api"
	"github.com/lookbusy1344/weave/config"
	"github.com/lookbusy1344/weave/debugger"
	"github.com/lookbusy1344/weave/gui"
	"github.com/lookbusy1344/weave/intern"
	"github.com/lookbusy1344/weave/lexer"
	"github.com/lookbusy1344/weave/service"
	"github.com/lookbusy1344/weave/tools"
)

// Build information, set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version information and exit")
		showHelp    = flag.Bool("help", false, "print usage information and exit")

		triviaMode = flag.String("trivia", "", "trivia mode: none, documentation, all (overrides config)")

		dumpTokens  = flag.Bool("dump", false, "print the canonical token dump")
		showTokens  = flag.Bool("tokens", false, "print one line per token")
		showDiag    = flag.Bool("diagnostics", false, "print every recorded diagnostic")
		renderDiag  = flag.Bool("render", false, "print the framed diagnostic render")
		renderLimit = flag.Int("render-limit", 0, "max diagnostics rendered per root (0 uses config default)")

		formatMode = flag.Bool("format", false, "print the normalized source text and exit")
		lintMode   = flag.Bool("lint", false, "print style issues and exit")
		xrefMode   = flag.Bool("xref", false, "print the identifier cross-reference and exit")

		debugMode = flag.Bool("debug", false, "run the line-oriented debugger over the given file")
		tuiMode   = flag.Bool("tui", false, "run the text user interface debugger over the given file")
		guiMode   = flag.Bool("gui", false, "run the desktop source explorer")

		apiServer = flag.Bool("serve", false, "start the HTTP API server")
		apiPort   = flag.Int("port", 0, "API server port (0 uses config default)")

		showConfig = flag.Bool("show-config", false, "print the resolved configuration and exit")
		saveConfig = flag.Bool("save-config", false, "write the resolved configuration to the config path and exit")

		verbose = flag.Bool("verbose", false, "enable verbose logging")
	)

	flag.Usage = printHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("weavec version %s (commit %s, built %s)\n", Version, Commit, Date)
		return
	}
	if *showHelp {
		printHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "weavec: loading config: %v\n", err)
		os.Exit(1)
	}

	if *showConfig {
		fmt.Printf("%+v\n", *cfg)
		return
	}
	if *saveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote configuration to %s\n", config.GetConfigPath())
		return
	}

	mode := cfg.TriviaMode()
	if *triviaMode != "" {
		mode = parseTriviaMode(*triviaMode)
	}

	pool := intern.NewPool()
	svc := service.NewLexService(pool, mode)

	if *apiServer {
		port := *apiPort
		if port == 0 {
			port = cfg.API.Port
		}
		if err := runServer(port); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *guiMode {
		if flag.NArg() > 0 {
			if err := loadFile(svc, flag.Arg(0)); err != nil {
				fmt.Fprintf(os.Stderr, "weavec: %v\n", err)
				os.Exit(1)
			}
		}
		if err := gui.RunGUI(svc); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: gui: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *debugMode || *tuiMode {
		dbg := debugger.NewDebugger(svc)
		if flag.NArg() > 0 {
			if err := dbg.ExecuteCommand("load " + flag.Arg(0)); err != nil {
				fmt.Fprintf(os.Stderr, "weavec: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(dbg.GetOutput())
		}

		var runErr error
		if *tuiMode {
			runErr = debugger.RunTUI(dbg)
		} else {
			runErr = debugger.RunCLI(dbg)
		}
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "weavec: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "weavec: no input file given (use -help for usage)")
		os.Exit(1)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "weavec: lexing %s (trivia=%v)\n", flag.Arg(0), mode)
	}

	if err := loadFile(svc, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "weavec: %v\n", err)
		os.Exit(1)
	}

	limit := *renderLimit
	if limit == 0 {
		limit = cfg.Diagnostics.RenderLimit
	}

	ran := false
	if *formatMode {
		ran = true
		if err := runFormat(svc); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: format: %v\n", err)
			os.Exit(1)
		}
	}
	if *lintMode {
		ran = true
		runLint(svc)
	}
	if *xrefMode {
		ran = true
		if err := runXRef(svc); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: xref: %v\n", err)
			os.Exit(1)
		}
	}
	if *dumpTokens {
		ran = true
		if err := runDump(svc); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: dump: %v\n", err)
			os.Exit(1)
		}
	}
	if *showTokens {
		ran = true
		runTokens(svc)
	}
	if *showDiag {
		ran = true
		runDiagnostics(svc)
	}
	if *renderDiag {
		ran = true
		if err := runRender(svc, limit); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: render: %v\n", err)
			os.Exit(1)
		}
	}

	if !ran {
		// Default: dump tokens, then render any diagnostics.
		if err := runDump(svc); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: dump: %v\n", err)
			os.Exit(1)
		}
		if err := runRender(svc, limit); err != nil {
			fmt.Fprintf(os.Stderr, "weavec: render: %v\n", err)
			os.Exit(1)
		}
	}

	if svc.HasErrors() {
		os.Exit(1)
	}
}

func loadFile(svc *service.LexService, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied CLI argument
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := svc.LoadSource(path, data); err != nil {
		return err
	}
	return nil
}

func runDump(svc *service.LexService) error {
	text, err := svc.Dump()
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func runTokens(svc *service.LexService) {
	for i, t := range svc.TokenSummaries() {
		fmt.Printf("%4d: %-20s %d:%d  %q\n", i, t.Kind, t.Line, t.Column, t.Text)
	}
}

func runDiagnostics(svc *service.LexService) {
	diags := svc.DiagnosticSummaries()
	if len(diags) == 0 {
		fmt.Println("no diagnostics")
		return
	}
	for _, d := range diags {
		fmt.Printf("%s: %d:%d: %s\n", d.Level, d.Line, d.Column, d.Message)
	}
}

func runRender(svc *service.LexService, limit int) error {
	text, err := svc.RenderDiagnostics(limit)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func runFormat(svc *service.LexService) error {
	src := svc.SourceText()
	formatted, err := tools.FormatString(string(src.Bytes()), src.Name())
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func runLint(svc *service.LexService) {
	src := svc.SourceText()
	issues := tools.LintString(string(src.Bytes()), src.Name())
	if len(issues) == 0 {
		fmt.Println("no lint issues")
		return
	}
	for _, issue := range issues {
		fmt.Println(issue)
	}
}

func runXRef(svc *service.LexService) error {
	src := svc.SourceText()
	symbols, err := tools.NewXRefGenerator().Generate(string(src.Bytes()), src.Name())
	if err != nil {
		return err
	}
	for name, sym := range symbols {
		fmt.Printf("%s: %d occurrence(s), first at %d:%d\n", name, len(sym.Occurrences), sym.First.Line, sym.First.Column)
	}
	return nil
}

// runServer starts the HTTP API server and blocks until it receives a
// shutdown signal, either from the OS or because its parent process
// has died.
func runServer(port int) error {
	server := api.NewServer(port)

	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "weavec: server shutdown: %v\n", err)
			}
		})
	}

	monitor := api.NewProcessMonitor(shutdown)
	monitor.Start()
	defer monitor.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		shutdown()
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

func parseTriviaMode(s string) lexer.TriviaMode {
	switch s {
	case "none":
		return lexer.TriviaNone
	case "all":
		return lexer.TriviaAll
	default:
		return lexer.TriviaDocumentation
	}
}

func printHelp() {
	fmt.Println(`weavec - the Weave lexer toolchain

Usage:
  weavec [flags] <file>       lex <file> and print its tokens/diagnostics
  weavec -format <file>       print the normalized source text
  weavec -lint <file>         print style issues
  weavec -xref <file>         print the identifier cross-reference
  weavec -debug <file>        run the line-oriented debugger
  weavec -tui <file>          run the text user interface debugger
  weavec -gui [file]          run the desktop source explorer
  weavec -serve               start the HTTP API server
  weavec -show-config         print the resolved configuration
  weavec -save-config         write the resolved configuration file

Flags:`)
	flag.PrintDefaults()
}
