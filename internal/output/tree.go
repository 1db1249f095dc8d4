package output

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// statusColumn is the rune column file statuses start at.
const statusColumn = 44

// TreeEntry is one written path shown in a file tree.
type TreeEntry struct {
	// Path is slash separated and relative to the tree root.
	Path string

	// Status is one of the Status* constants.
	Status string
}

type treeNode struct {
	name     string
	status   string
	dir      bool
	children map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	if n.children == nil {
		n.children = make(map[string]*treeNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name}
		n.children[name] = c
	}
	return c
}

// sorted lists directories before files, each group by name.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dir != out[j].dir {
			return out[i].dir
		}
		return out[i].name < out[j].name
	})
	return out
}

// RenderFileTree draws entries under rootName with each entry's status
// color-coded on the right. Intermediate directories carry no status.
func RenderFileTree(rootName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, dir: true}
	for _, e := range entries {
		parts := strings.Split(strings.Trim(e.Path, "/"), "/")
		n := root
		for i, part := range parts {
			n = n.child(part)
			if i < len(parts)-1 {
				n.dir = true
			}
		}
		n.status = e.Status
		if e.Status == StatusDirectory {
			n.dir = true
		}
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(rootName+"/") + "\n")
	writeChildren(&sb, root, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, n *treeNode, indent string) {
	children := n.sorted()
	for i, c := range children {
		branch, next := "├── ", "│   "
		if i == len(children)-1 {
			branch, next = "└── ", "    "
		}

		line := indent + branch + c.name
		if c.dir {
			line += "/"
		}
		if c.status != "" {
			pad := statusColumn - utf8.RuneCountInString(line)
			if pad < 2 {
				pad = 2
			}
			line += strings.Repeat(" ", pad) + StatusStyle(c.status).Render(c.status)
		}
		sb.WriteString(line + "\n")

		writeChildren(sb, c, indent+next)
	}
}
