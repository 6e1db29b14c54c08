// Command keyhub edits i18next-style JSON translation catalogs and serves
// the key-intake endpoint that lets running applications report missing
// translation keys.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/guilgui51/keyhub"
	"github.com/guilgui51/keyhub/extract"
	"github.com/guilgui51/keyhub/server"
	"github.com/guilgui51/keyhub/settings"
	"github.com/guilgui51/keyhub/suggest"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = keyhub.Version
	commit    = keyhub.GitCommit
	buildDate = keyhub.BuildDate
)

const usage = `Usage: keyhub [flags] <command> [args]

Commands:
  serve                       Start the key-intake HTTP server
  import <dir>                Import a locales root folder
  status                      Show per-language completeness
  list [namespace]            List namespaces or a namespace's keys
  add-key <ns> <key>          Add a key to every language
  remove-key <ns> <key>       Remove a key from every language
  add-language <code>         Configure a new language (xx-XX)
  remove-language <code>      Drop a language from the configuration
  scan <dir>                  Register keys referenced by HTML/Go sources
  suggest <from> <to> <text>  Fetch a machine-translation suggestion

Flags:
  -settings <path>            Settings file (default: user config dir)
  -verbose                    Debug logging
  -version                    Show version
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("keyhub", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	settingsPath := fs.String("settings", "", "Settings file path (default: user config dir)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", keyhub.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("a command is required")
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	root := glog.NewLogger(
		glog.WithLevel(level),
		glog.WithLoggerTypeConsole(),
	)

	store, err := settings.NewFileStore(*settingsPath)
	if err != nil {
		return err
	}
	catalog := keyhub.NewCatalog(store, keyhub.WithLogger(root.GetLogger("catalog")))

	command := fs.Arg(0)
	rest := fs.Args()[1:]

	switch command {
	case "serve":
		return runServe(catalog, root, rest, stdout, stderr)
	case "import":
		return runImport(catalog, rest, stdout)
	case "status":
		return runStatus(catalog, stdout)
	case "list":
		return runList(catalog, rest, stdout)
	case "add-key":
		return runAddKey(catalog, rest, stdout)
	case "remove-key":
		return runRemoveKey(catalog, rest, stdout)
	case "add-language":
		return runAddLanguage(catalog, rest, stdout)
	case "remove-language":
		return runRemoveLanguage(catalog, rest, stdout)
	case "scan":
		return runScan(catalog, rest, stdout)
	case "suggest":
		return runSuggest(catalog, rest, stdout)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runServe(catalog *keyhub.Catalog, root *glog.BaseLogger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	port := fs.Int("port", 0, "TCP port (default: settings serverPort)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := catalog.Settings()
	if err != nil {
		return err
	}
	listenPort := *port
	if listenPort == 0 {
		listenPort = s.ServerPort
	}

	catalog.Events().OnKeysReceived(func(ev keyhub.KeysReceived) {
		fmt.Fprintf(stdout, "received %s: %s\n", ev.Namespace, strings.Join(ev.Keys, ", "))
	})

	srv := server.New(catalog, server.WithLogger(root.GetLogger("server")))
	status, err := srv.Start(listenPort)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "listening on http://127.0.0.1:%d\n", status.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	srv.Stop()
	fmt.Fprintln(stdout, "stopped")
	return nil
}

func runImport(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: keyhub import <dir>")
	}

	start := time.Now()
	snap, err := catalog.ImportFolder(args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(stdout, "Imported %s (%s mode) in %v\n",
		snap.RootFolder, snap.FolderStructure, time.Since(start).Round(time.Millisecond))
	for _, lang := range snap.Languages {
		fmt.Fprintf(stdout, "  %-6s %s (%d files)\n", lang.Code, keyhub.GetLanguageName(lang.Code), len(lang.Files))
	}
	return nil
}

func runStatus(catalog *keyhub.Catalog, stdout io.Writer) error {
	s, err := catalog.Settings()
	if err != nil {
		return err
	}
	data, err := catalog.ReadAll()
	if err != nil {
		return err
	}

	codes := make([]string, len(s.Languages))
	for i, lang := range s.Languages {
		codes[i] = lang.Code
	}

	report := keyhub.BuildReport(data, codes)
	fmt.Fprintf(stdout, "Namespaces: %d\n", report.Namespaces)
	fmt.Fprintf(stdout, "Keys:       %d\n\n", report.Keys)
	for _, lang := range report.Languages {
		pct := 100.0
		if lang.Total > 0 {
			pct = float64(lang.Completed) / float64(lang.Total) * 100
		}
		fmt.Fprintf(stdout, "  %-6s %4d/%4d (%.0f%%)\n", lang.Code, lang.Completed, lang.Total, pct)
	}
	if !report.HasMissing() {
		fmt.Fprintln(stdout, "\nAll translations complete.")
	}
	return nil
}

func runList(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	data, err := catalog.ReadAll()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, ns := range data {
			fmt.Fprintf(stdout, "%s (%d keys)\n", ns.Namespace, len(ns.Keys))
		}
		return nil
	}

	for _, ns := range data {
		if ns.Namespace != args[0] {
			continue
		}
		for _, kv := range ns.Keys {
			fmt.Fprintln(stdout, kv.Key)
		}
		return nil
	}
	return fmt.Errorf("unknown namespace %q", args[0])
}

func runAddKey(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: keyhub add-key <namespace> <key>")
	}
	if err := catalog.AddKey(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "added %s:%s\n", args[0], args[1])
	return nil
}

func runRemoveKey(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: keyhub remove-key <namespace> <key>")
	}
	if err := catalog.RemoveKey(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "removed %s:%s\n", args[0], args[1])
	return nil
}

func runAddLanguage(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: keyhub add-language <code>")
	}
	code := keyhub.NormalizeLocale(args[0])
	if !keyhub.IsLocale(code) {
		return fmt.Errorf("%q is not a valid locale code (expected xx-XX)", args[0])
	}
	snap, err := catalog.AddLanguage(code)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d languages configured\n", len(snap.Languages))
	return nil
}

func runRemoveLanguage(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: keyhub remove-language <code>")
	}
	snap, err := catalog.RemoveLanguage(keyhub.NormalizeLocale(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d languages configured\n", len(snap.Languages))
	return nil
}

func runScan(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: keyhub scan <dir>")
	}

	keys, err := extract.Dir(args[0], extract.NewHTMLExtractor(), extract.NewGoExtractor())
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}

	for _, k := range keys {
		if err := catalog.AddKey(k.Namespace, k.Key); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "registered %d keys from %s\n", len(keys), args[0])
	return nil
}

func runSuggest(catalog *keyhub.Catalog, args []string, stdout io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: keyhub suggest <from> <to> <text>")
	}

	s, err := catalog.Settings()
	if err != nil {
		return err
	}

	var provider suggest.Provider
	switch {
	case s.DeepLAPIKey != "":
		provider = suggest.NewDeepLProvider(suggest.DeepLConfig{APIKey: s.DeepLAPIKey})
	case os.Getenv("OPENAI_API_KEY") != "":
		provider = suggest.NewOpenAIProvider(suggest.OpenAIConfig{APIKey: os.Getenv("OPENAI_API_KEY")})
	default:
		return fmt.Errorf("no DeepL key in settings and OPENAI_API_KEY is unset")
	}

	suggester := suggest.NewSuggester(
		suggest.NewRetryableProvider(provider, suggest.DefaultRetryConfig()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := suggester.Suggest(ctx, args[2], keyhub.NormalizeLocale(args[0]), keyhub.NormalizeLocale(args[1]))
	if err != nil {
		return fmt.Errorf("suggestion failed: %w", err)
	}
	fmt.Fprintln(stdout, result)
	return nil
}
