package highlight

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/repoview/highlight/language"
)

// Client wraps one incremental parser bound to a single language's grammar.
// Every open file of that language shares the same client; calls into it are
// serialized by the confinement contract documented on [SessionManager].
// Clients are owned by a [ClientPool] and outlive any one file's session.
type Client struct {
	language language.Language
	parser   *tree_sitter.Parser
	closed   bool
}

func newClient(cfg *language.Configuration) (*Client, error) {
	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(cfg.Grammar); err != nil {
		parser.Close()
		return nil, fmt.Errorf("%w: binding %s grammar: %v", ErrClientCreation, cfg.Language, err)
	}
	return &Client{language: cfg.Language, parser: parser}, nil
}

// Language returns the language this client parses.
func (c *Client) Language() language.Language { return c.language }

// Parse produces a parse tree for content. When oldTree is supplied the
// parser reuses its unaffected subtrees; passing nil forces a full parse.
// A cleared client returns nil rather than touching a closed parser.
func (c *Client) Parse(content []byte, oldTree *tree_sitter.Tree) *tree_sitter.Tree {
	if c.closed {
		return nil
	}
	return c.parser.Parse(content, oldTree)
}

func (c *Client) close() {
	if c.closed {
		return
	}
	c.closed = true
	c.parser.Close()
}
