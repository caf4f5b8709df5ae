package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// InstanceList manages the numbered repetitions of one container type:
// "BathymetryCoverage.001", "Group.002" and so on. Numbering is decimal,
// three digits, base 1, attached to the stem with a dot.
type InstanceList struct {
	stem    string
	entries []instanceEntry
}

type instanceEntry struct {
	index int
	node  *Node
}

// NewInstanceList creates an empty list for the given stem.
func NewInstanceList(stem string) *InstanceList {
	return &InstanceList{stem: stem}
}

// Stem returns the unnumbered container name.
func (l *InstanceList) Stem() string {
	return l.stem
}

// InstanceName renders the container name for a base-1 index,
// for example InstanceName("Group", 1) == "Group.001".
func InstanceName(stem string, index int) string {
	return fmt.Sprintf("%s.%03d", stem, index)
}

// ParseInstanceName splits a numbered container name back into its stem and
// base-1 index. Names without the dotted numeric suffix report ok false.
func ParseInstanceName(name string) (stem string, index int, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return name[:i], n, true
}

// AppendNew creates a node for the next unused index and returns it with
// its container name. Indices present from discovery are skipped, so a list
// holding 001 and 003 appends 002 before 004.
func (l *InstanceList) AppendNew(descs *Set) (*Node, string) {
	used := make(map[int]bool, len(l.entries))
	for _, e := range l.entries {
		used[e.index] = true
	}
	index := 1
	for used[index] {
		index++
	}
	node := NewNode(descs)
	l.entries = append(l.entries, instanceEntry{index: index, node: node})
	return node, InstanceName(l.stem, index)
}

// Put registers a node under an explicit base-1 index, replacing any node
// already held there. Discovery of existing files uses this to rebuild a
// list whose numbering may have gaps.
func (l *InstanceList) Put(index int, node *Node) error {
	if index < 1 {
		return &ErrStructure{Reason: "instance index must be positive, got " + strconv.Itoa(index)}
	}
	for i := range l.entries {
		if l.entries[i].index == index {
			l.entries[i].node = node
			return nil
		}
	}
	l.entries = append(l.entries, instanceEntry{index: index, node: node})
	return nil
}

// At returns the node at a base-1 sequence position, in append order. The
// position is independent of the numbering, so the second of two instances
// discovered as 001 and 003 sits at position 2.
func (l *InstanceList) At(pos int) (*Node, error) {
	if pos < 1 || pos > len(l.entries) {
		return nil, &ErrStructure{Reason: "no instance of " + l.stem + " at position " + strconv.Itoa(pos)}
	}
	return l.entries[pos-1].node, nil
}

// Len returns the number of registered instances.
func (l *InstanceList) Len() int {
	return len(l.entries)
}

// Each visits every instance in append order with its container name.
// Iteration stops on the first error.
func (l *InstanceList) Each(fn func(name string, node *Node) error) error {
	for _, e := range l.entries {
		if err := fn(InstanceName(l.stem, e.index), e.node); err != nil {
			return err
		}
	}
	return nil
}
