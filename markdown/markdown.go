// Package markdown renders documentation pages with goldmark: GitHub
// flavoured markdown, heading anchors, chroma highlighted code blocks and
// rewriting of relative links between .md files.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// LinkResolver maps a relative link to a markdown file (for example
// "./api.md#scale_value") to its site route. ok is false when the target
// does not exist.
type LinkResolver func(dest string) (route string, ok bool)

// Heading is an h2/h3 entry for a page's table of contents.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Result is the output of a single Render call.
type Result struct {
	HTML       string
	Headings   []Heading
	Unresolved []string // markdown links the resolver rejected
}

// Renderer is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

var stateKey = parser.NewContextKey()

type renderState struct {
	resolve    LinkResolver
	headings   []Heading
	unresolved []string
}

// New returns a renderer. Code blocks carry chroma CSS classes; pair the
// output with StyleCSS.
func New() *Renderer {
	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(&docTransformer{}, 100)),
		),
	)}
}

// Render converts src to HTML. resolve may be nil, in which case markdown
// links are left untouched.
func (r *Renderer) Render(src string, resolve LinkResolver) (Result, error) {
	st := &renderState{resolve: resolve}
	pc := parser.NewContext()
	pc.Set(stateKey, st)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf, parser.WithContext(pc)); err != nil {
		return Result{}, fmt.Errorf("markdown: %w", err)
	}
	return Result{HTML: buf.String(), Headings: st.headings, Unresolved: st.unresolved}, nil
}

// StyleCSS writes the stylesheet for the named chroma style. Unknown names
// fall back to chroma's default style.
func StyleCSS(w io.Writer, style string) error {
	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, styles.Get(style))
}

type docTransformer struct{}

func (t *docTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	st, _ := pc.Get(stateKey).(*renderState)
	if st == nil {
		return
	}
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 || node.Level == 3 {
				h := Heading{Level: node.Level, Text: nodeText(node, source)}
				if id, ok := node.AttributeString("id"); ok {
					if b, ok := id.([]byte); ok {
						h.ID = string(b)
					}
				}
				st.headings = append(st.headings, h)
			}
		case *ast.Link:
			dest := string(node.Destination)
			if st.resolve == nil || !IsMarkdownLink(dest) {
				return ast.WalkContinue, nil
			}
			if route, ok := st.resolve(dest); ok {
				node.Destination = []byte(route)
			} else {
				st.unresolved = append(st.unresolved, dest)
			}
		}
		return ast.WalkContinue, nil
	})
}

// IsMarkdownLink reports whether dest is a relative link to a .md file.
func IsMarkdownLink(dest string) bool {
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(dest, "/") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".md")
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
