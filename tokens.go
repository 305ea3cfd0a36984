package highlight

import (
	"iter"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/repoview/highlight/language"
)

// Token is one classified span of source text: the semantic name of the
// query capture that matched it and the byte range it covers. Tokens are
// ephemeral; they are consumed immediately to build styled spans.
type Token struct {
	Name  string
	Range tree_sitter.Range
}

// tokens yields the highlight-query captures of tree between the start and
// end byte offsets, in document order. An end of 0 means the whole document.
func tokens(cfg *language.Configuration, tree *tree_sitter.Tree, source []byte, start, end uint) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		cursor := tree_sitter.NewQueryCursor()
		defer cursor.Close()
		if end > start {
			cursor.SetByteRange(start, end)
		}

		captures := cursor.Captures(cfg.Query, tree.RootNode(), source)
		for {
			match, index := captures.Next()
			if match == nil {
				return
			}
			capture := match.Captures[index]
			tok := Token{
				Name:  cfg.TokenName(uint(capture.Index)),
				Range: capture.Node.Range(),
			}
			if !yield(tok) {
				return
			}
		}
	}
}
