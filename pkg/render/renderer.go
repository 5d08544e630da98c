package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/TheNexusGroup/simplistic/pkg/dom"
)

// voidElements cannot have children and render without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Development only; it inflates the
	// payload.
	Pretty bool

	// Indent is the string per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes dom.Node trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		return r.renderText(w, node, depth)
	case dom.KindComment:
		return r.renderComment(w, node, depth)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	r.writeIndent(w, depth)

	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttrs(w, node); err != nil {
		return err
	}

	if IsVoidElement(node.Tag) {
		return r.write(w, ">")
	}
	if err := r.write(w, ">"); err != nil {
		return err
	}

	pretty := r.config.Pretty && len(node.Children) > 0
	if pretty {
		if err := r.write(w, "\n"); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
		if pretty {
			if err := r.write(w, "\n"); err != nil {
				return err
			}
		}
	}
	if pretty {
		r.writeIndent(w, depth)
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// renderAttrs writes attributes in sorted order for deterministic output.
func (r *Renderer) renderAttrs(w io.Writer, node *dom.Node) error {
	if len(node.Attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Attrs))
	for k := range node.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(node.Attrs[k])); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderText(w io.Writer, node *dom.Node, depth int) error {
	r.writeIndent(w, depth)
	return r.write(w, escapeHTML(node.Text))
}

func (r *Renderer) renderComment(w io.Writer, node *dom.Node, depth int) error {
	r.writeIndent(w, depth)
	_, err := fmt.Fprintf(w, "<!--%s-->", escapeComment(node.Text))
	return err
}

func (r *Renderer) write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	if !r.config.Pretty || depth == 0 {
		return
	}
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
