// Package language maps files to supported grammars and owns the compiled
// highlight configuration for each language.
//
// The set of languages is fixed at compile time: each [Language] carries a
// tree-sitter grammar from its binding module and a highlight query embedded
// in this package. [Detect] resolves a file path to a language, and
// [Registry] lazily compiles and caches one [Configuration] per language.
package language

import (
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_yaml "github.com/tree-sitter-grammars/tree-sitter-yaml/bindings/go"
	tree_sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

// Language identifies one supported grammar.
type Language string

const (
	Go         Language = "go"
	Python     Language = "python"
	JavaScript Language = "javascript"
	JSON       Language = "json"
	Rust       Language = "rust"
	C          Language = "c"
	Bash       Language = "bash"
	YAML       Language = "yaml"
)

type definition struct {
	displayName string
	extensions  []string
	grammar     func() *tree_sitter.Language
}

var definitions = map[Language]definition{
	Go: {
		displayName: "Go",
		extensions:  []string{".go"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_go.Language()) },
	},
	Python: {
		displayName: "Python",
		extensions:  []string{".py", ".pyw"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_python.Language()) },
	},
	JavaScript: {
		displayName: "JavaScript",
		extensions:  []string{".js", ".mjs", ".cjs", ".jsx"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_javascript.Language()) },
	},
	JSON: {
		displayName: "JSON",
		extensions:  []string{".json", ".jsonc"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_json.Language()) },
	},
	Rust: {
		displayName: "Rust",
		extensions:  []string{".rs"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_rust.Language()) },
	},
	C: {
		displayName: "C",
		extensions:  []string{".c", ".h"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_c.Language()) },
	},
	Bash: {
		displayName: "Bash",
		extensions:  []string{".sh", ".bash", ".zsh"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_bash.Language()) },
	},
	YAML: {
		displayName: "YAML",
		extensions:  []string{".yaml", ".yml"},
		grammar:     func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_yaml.Language()) },
	},
}

// filenames maps well-known basenames that carry no telling extension.
var filenames = map[string]Language{
	".bashrc":       Bash,
	".bash_profile": Bash,
	".zshrc":        Bash,
	".zprofile":     Bash,
}

var extensions = func() map[string]Language {
	m := make(map[string]Language)
	for lang, def := range definitions {
		for _, ext := range def.extensions {
			m[ext] = lang
		}
	}
	return m
}()

// String returns the language identifier.
func (l Language) String() string { return string(l) }

// DisplayName returns the human-readable name of the language, or the raw
// identifier if the language is unknown.
func (l Language) DisplayName() string {
	if def, ok := definitions[l]; ok {
		return def.displayName
	}
	return string(l)
}

// Known reports whether l names a supported language.
func (l Language) Known() bool {
	_, ok := definitions[l]
	return ok
}

// All returns every supported language in stable order.
func All() []Language {
	return []Language{Go, Python, JavaScript, JSON, Rust, C, Bash, YAML}
}

// Detect resolves a file path to a language by well-known basename first,
// then by extension. It is a pure function; unrecognized files return false.
func Detect(path string) (Language, bool) {
	base := filepath.Base(path)
	if lang, ok := filenames[base]; ok {
		return lang, true
	}
	ext := strings.ToLower(filepath.Ext(base))
	lang, ok := extensions[ext]
	return lang, ok
}

// DetectWithShebang is [Detect] with a fallback on the file's first line for
// extensionless scripts.
func DetectWithShebang(path, firstLine string) (Language, bool) {
	if lang, ok := Detect(path); ok {
		return lang, true
	}
	if !strings.HasPrefix(firstLine, "#!") {
		return "", false
	}
	lower := strings.ToLower(firstLine)
	switch {
	case strings.Contains(lower, "python"):
		return Python, true
	case strings.Contains(lower, "bash"), strings.Contains(lower, "zsh"), strings.Contains(lower, "sh"):
		return Bash, true
	case strings.Contains(lower, "node"):
		return JavaScript, true
	}
	return "", false
}
