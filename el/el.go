package el

import (
	"github.com/TheNexusGroup/simplistic/pkg/dom"
	"github.com/TheNexusGroup/simplistic/pkg/reactive"
)

func container(sc *reactive.Scope, tag string, children ...any) *dom.Node {
	return sc.Container(dom.NewElement(tag), children...)
}

func Div(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "div", children...)
}

func Span(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "span", children...)
}

func P(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "p", children...)
}

func H1(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "h1", children...)
}

func H2(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "h2", children...)
}

func Ul(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "ul", children...)
}

func Li(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "li", children...)
}

func Button(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "button", children...)
}

func Label(sc *reactive.Scope, children ...any) *dom.Node {
	return container(sc, "label", children...)
}

// Input is a leaf: it never takes children.
func Input(sc *reactive.Scope) *dom.Node {
	return sc.Leaf(dom.NewElement("input"))
}

// Text appends a plain text node at the current insertion point.
func Text(sc *reactive.Scope, text string) *dom.Node {
	return sc.Text(text)
}
