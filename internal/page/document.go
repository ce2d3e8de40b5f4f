// Package page holds the behavior of the board's web page: loading a quote
// into the page and the "copied" tooltip shown when text is copied. Both run
// against a small Document abstraction so the CLI and tests can drive them
// without a browser.
package page

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrElementNotFound is returned when an id has no element in the document.
var ErrElementNotFound = errors.New("element not found")

// Element is the subset of a DOM element the page touches.
type Element interface {
	ID() string
	Text() string
	SetText(text string)

	AddClass(class string)
	RemoveClass(class string)
	HasClass(class string) bool

	Style(property string) string
	SetStyle(property, value string)

	OffsetWidth() float64
	OffsetHeight() float64
}

// Document finds elements by id.
type Document interface {
	ElementByID(id string) (Element, bool)
}

func lookup(doc Document, id string) (Element, error) {
	el, ok := doc.ElementByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}

	return el, nil
}

// Node is an in-memory Element. The zero value is not usable; use NewNode.
type Node struct {
	mu      sync.RWMutex
	id      string
	text    string
	classes []string
	style   map[string]string
	width   float64
	height  float64
}

// NewNode creates an element with the given id and initial classes.
func NewNode(id string, classes ...string) *Node {
	n := &Node{id: id, style: make(map[string]string)}
	for _, c := range classes {
		n.AddClass(c)
	}

	return n
}

// WithText sets the initial text and returns n.
func (n *Node) WithText(text string) *Node {
	n.SetText(text)
	return n
}

// WithSize sets the rendered size and returns n.
func (n *Node) WithSize(width, height float64) *Node {
	n.mu.Lock()
	n.width, n.height = width, height
	n.mu.Unlock()

	return n
}

func (n *Node) ID() string { return n.id }

func (n *Node) Text() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.text
}

func (n *Node) SetText(text string) {
	n.mu.Lock()
	n.text = text
	n.mu.Unlock()
}

// AddClass appends class unless it is already present, like DOMTokenList.add.
func (n *Node) AddClass(class string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !slices.Contains(n.classes, class) {
		n.classes = append(n.classes, class)
	}
}

func (n *Node) RemoveClass(class string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
}

func (n *Node) HasClass(class string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Contains(n.classes, class)
}

// Classes returns the class list in insertion order.
func (n *Node) Classes() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.classes)
}

func (n *Node) Style(property string) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.style[property]
}

func (n *Node) SetStyle(property, value string) {
	n.mu.Lock()
	n.style[property] = value
	n.mu.Unlock()
}

func (n *Node) OffsetWidth() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.width
}

func (n *Node) OffsetHeight() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.height
}

// MemoryDocument is a Document backed by a map of Nodes.
type MemoryDocument struct {
	mu    sync.RWMutex
	nodes map[string]*Node
}

// NewMemoryDocument creates a document holding nodes.
func NewMemoryDocument(nodes ...*Node) *MemoryDocument {
	d := &MemoryDocument{nodes: make(map[string]*Node, len(nodes))}
	for _, n := range nodes {
		d.Append(n)
	}

	return d
}

// Append adds n, replacing any element with the same id.
func (d *MemoryDocument) Append(n *Node) {
	d.mu.Lock()
	d.nodes[n.id] = n
	d.mu.Unlock()
}

// Node returns the concrete node for id, for callers that need Classes.
func (d *MemoryDocument) Node(id string) (*Node, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n, ok := d.nodes[id]

	return n, ok
}

func (d *MemoryDocument) ElementByID(id string) (Element, bool) {
	n, ok := d.Node(id)
	if !ok {
		return nil, false
	}

	return n, true
}
