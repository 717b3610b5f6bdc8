package sff

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// xmlNode is one element of a parsed XML tree. Text is the
// concatenation of the element's character data, entities resolved.
type xmlNode struct {
	name     string
	attrs    []xml.Attr
	text     string
	children []*xmlNode
}

// parseXMLTree parses input into an element tree rooted at the single
// top-level element.
func parseXMLTree(input string) (*xmlNode, error) {
	dec := xml.NewDecoder(strings.NewReader(input))

	var root *xmlNode
	var stack []*xmlNode

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{name: t.Name.Local, attrs: t.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// attr returns the value of the named attribute, or "" if absent.
func (n *xmlNode) attr(name string) string {
	for _, a := range n.attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// descendant returns the first descendant element with the given name,
// in document order, or nil.
func (n *xmlNode) descendant(name string) *xmlNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if found := c.descendant(name); found != nil {
			return found
		}
	}
	return nil
}

// childText returns the text of the first direct child with the given
// name, or "" when the child is absent or empty.
func (n *xmlNode) childText(name string) string {
	for _, c := range n.children {
		if c.name == name {
			return c.text
		}
	}
	return ""
}
