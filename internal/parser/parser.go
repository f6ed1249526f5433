// Package parser adapts the tree-sitter Java grammar to the syntax.Node
// capability used by the lint rules.
package parser

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/jlint-dev/jlint/internal/syntax"
)

var (
	// ErrLanguage indicates the Java grammar could not be initialized.
	ErrLanguage = errors.New("failed to initialize Java grammar")
	// ErrParse indicates the source text could not be parsed into a tree.
	ErrParse = errors.New("failed to parse source")
)

// Parse parses Java source text and returns the root of its syntax tree.
func Parse(ctx context.Context, source []byte) (syntax.Node, error) {
	lang := java.GetLanguage()
	if lang == nil {
		return nil, ErrLanguage
	}

	p := sitter.NewParser()
	p.SetLanguage(lang)

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, ErrParse
	}
	return &node{inner: root}, nil
}

// node wraps a tree-sitter node behind syntax.Node.
type node struct {
	inner *sitter.Node
}

func (n *node) Kind() string   { return n.inner.Type() }
func (n *node) StartByte() int { return int(n.inner.StartByte()) }
func (n *node) EndByte() int   { return int(n.inner.EndByte()) }

func (n *node) StartPoint() syntax.Point {
	p := n.inner.StartPoint()
	return syntax.Point{Row: int(p.Row), Column: int(p.Column)}
}

func (n *node) ChildCount() int { return int(n.inner.ChildCount()) }

func (n *node) Child(i int) syntax.Node {
	return &node{inner: n.inner.Child(i)}
}

func (n *node) Content(source []byte) string {
	return n.inner.Content(source)
}
