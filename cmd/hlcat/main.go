// Command hlcat prints files with syntax highlighting, exercising the full
// session pipeline: language detection, registry, client pool, and a session
// rendered as ANSI-styled text.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/repoview/highlight"
	"github.com/repoview/highlight/language"
	"github.com/repoview/highlight/theme"
)

var (
	langOverride = pflag.StringP("lang", "l", "", "force a language instead of detecting it")
	plain        = pflag.Bool("plain", false, "disable styling")
)

func main() {
	pflag.Parse()
	if pflag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hlcat [--lang <id>] [--plain] <file>...")
		os.Exit(2)
	}

	registry := language.NewRegistry()
	// Synchronous scheduling: the CLI drives each pass itself via Refresh.
	manager := highlight.NewSessionManager(registry,
		highlight.WithScheduler(func(func()) {}),
		highlight.WithTheme(theme.Default()),
	)

	exit := 0
	for _, path := range pflag.Args() {
		if err := printFile(manager, path); err != nil {
			fmt.Fprintf(os.Stderr, "hlcat: %v\n", err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func printFile(manager *highlight.SessionManager, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lang, ok := detect(path, content)
	if *plain || !ok {
		_, err = os.Stdout.Write(content)
		return err
	}

	target := &spanCollector{size: uint(len(content))}
	session, err := manager.CreateSession(target, path, lang, content)
	if err != nil {
		// No colors is the worst acceptable outcome.
		fmt.Fprintf(os.Stderr, "hlcat: %v (printing plain)\n", err)
		_, err = os.Stdout.Write(content)
		return err
	}
	session.Refresh()
	manager.ReleaseSession(path)

	return render(os.Stdout, content, target.spans)
}

func detect(path string, content []byte) (language.Language, bool) {
	if *langOverride != "" {
		lang := language.Language(*langOverride)
		return lang, lang.Known()
	}
	firstLine := string(content)
	for i, b := range content {
		if b == '\n' {
			firstLine = string(content[:i])
			break
		}
	}
	return language.DetectWithShebang(path, firstLine)
}

// spanCollector captures the last full batch of styled spans.
type spanCollector struct {
	size  uint
	spans []highlight.StyledSpan
}

func (t *spanCollector) ApplyStyles(spans []highlight.StyledSpan) { t.spans = spans }

func (t *spanCollector) VisibleRange() (uint, uint) { return 0, t.size }

// render writes source with each span styled, skipping spans nested inside
// an already-emitted one.
func render(w *os.File, source []byte, spans []highlight.StyledSpan) error {
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	pos := uint(0)
	for _, span := range spans {
		if span.Start < pos || span.End > uint(len(source)) {
			continue
		}
		if span.Start > pos {
			if _, err := w.Write(source[pos:span.Start]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, span.Style.Render(string(source[span.Start:span.End]))); err != nil {
			return err
		}
		pos = span.End
	}
	if pos < uint(len(source)) {
		if _, err := w.Write(source[pos:]); err != nil {
			return err
		}
	}
	return nil
}
