package parser

import (
	"strings"

	"github.com/beevik/etree"
)

// Structural queries over the document tree. Every construction rule goes
// through these instead of walking child lists by hand.

// query returns all elements matching path relative to el, in document
// order. Paths use etree syntax, e.g. "tags/tag" or "steps/*".
func query(el *etree.Element, path string) []*etree.Element {
	return el.FindElements(path)
}

// queryFirst returns the first match for path, or nil.
func queryFirst(el *etree.Element, path string) *etree.Element {
	return el.FindElement(path)
}

// childText returns the text content of the first child matching path.
func childText(el *etree.Element, path string) (string, bool) {
	child := queryFirst(el, path)
	if child == nil {
		return "", false
	}
	return child.Text(), true
}

// wrapped returns the first element child of el's child named tag. Wrapper
// children like <base>, <to> or <value> carry exactly one expression
// element.
func wrapped(el *etree.Element, tag string) *etree.Element {
	return queryFirst(el, tag+"/*")
}

// firstElementChild returns el's first element child, or nil.
func firstElementChild(el *etree.Element) *etree.Element {
	children := el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// rawElement serializes el for diagnostics.
func rawElement(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.AddChild(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "<" + el.Tag + ">"
	}
	return strings.TrimSpace(s)
}
