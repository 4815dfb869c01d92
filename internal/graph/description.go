package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pranshuparmar/ps2gv/pkg/model"
)

const (
	graphName        = "ptree"
	defaultNodeStyle = "node [style=filled];"
)

// Statement is one line of the graph body.
type Statement interface {
	DOT() string
}

// Edge links a parent process to a child.
type Edge struct {
	From string
	To   string
}

func (e Edge) DOT() string {
	return fmt.Sprintf("  \"%s\" -> \"%s\";", e.From, e.To)
}

// Node describes how one process is drawn. Label and Tooltip are already
// escaped for DOT: line breaks are the two characters \n and they contain
// no double quotes.
type Node struct {
	ID        string
	Label     string
	FillColor string
	// Sized is false when the renderer's default size applies.
	Sized   bool
	Width   float64
	Height  float64
	Tooltip string

	// Record is the process the node was generated from.
	Record model.ProcessRecord
}

func (n Node) DOT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  \"%s\" [label=\"%s\" fillcolor=\"%s\" ", n.ID, n.Label, n.FillColor)
	if n.Sized {
		fmt.Fprintf(&b, "width=\"%.2f\" height=\"%.2f\" ", n.Width, n.Height)
	}
	fmt.Fprintf(&b, "tooltip=\"%s\"];", n.Tooltip)
	return b.String()
}

// Description is a directed graph in Graphviz DOT form. Statements keep the
// order of the records they were generated from.
type Description struct {
	Statements []Statement
}

// Nodes returns the node statements in order.
func (d *Description) Nodes() []Node {
	var nodes []Node
	for _, s := range d.Statements {
		if n, ok := s.(Node); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// WriteTo writes the DOT document to w.
func (d *Description) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	fmt.Fprintf(bw, "digraph %s {\n", graphName)
	fmt.Fprintln(bw, defaultNodeStyle)
	for _, s := range d.Statements {
		fmt.Fprintln(bw, s.DOT())
	}
	fmt.Fprintln(bw, "}")
	err := bw.Flush()
	return cw.n, err
}

func (d *Description) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

// Bytes returns the DOT document.
func (d *Description) Bytes() []byte {
	return []byte(d.String())
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
