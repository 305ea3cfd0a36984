/*
Package highlight manages syntax-highlighting sessions for a repository
browser: it multiplexes many open files over one shared tree-sitter parser
per language and keeps a bounded cache of recently closed sessions so that
reopening a file is cheap.

The package does not open files, render views, or talk to git. It consumes
content and a detected language, and streams styled byte ranges into a
caller-supplied [RenderTarget].

# Usage

Create a [language.Registry], a [SessionManager] on top of it, and one
session per open file:

	registry := language.NewRegistry()
	manager := highlight.NewSessionManager(registry, highlight.WithCapacity(10))

	lang, ok := language.Detect("main.go")
	if !ok {
		// unsupported file, render plain text
		return
	}

	session, err := manager.CreateSession(view, "main.go", lang, content)
	if err != nil {
		// fall back to plain text, never fatal
		return
	}

	// on edit:
	manager.UpdateContent("main.go", newContent, uint(len(content)))

	// on close:
	manager.ReleaseSession("main.go")

Styled spans arrive on the view through [RenderTarget.ApplyStyles] after each
scheduled highlight pass. Token styles come from a [theme.Theme]; the default
theme is used unless [WithTheme] is given.

All SessionManager methods must be called from one goroutine, typically the
UI loop. [language.Registry.PreloadAll] is the only call designed to run in
the background.
*/
package highlight
