package schema

// AttrWriter is the slice of the container layer the schema engine needs
// when flushing attribute state: group creation and attribute assignment at
// an absolute path.
type AttrWriter interface {
	CreateGroup(path string) error
	SetAttr(path, key string, val interface{}) error
}

// Node is one group in the hierarchy: a typed attribute set plus named
// child groups and numbered instance lists. Structure is built in memory
// and flushed to a container in a single ordered pass.
type Node struct {
	attrs      *AttrSet
	childOrder []string
	children   map[string]*Node
	listOrder  []string
	lists      map[string]*InstanceList
}

// NewNode creates a node whose attributes follow the given registry.
func NewNode(descs *Set) *Node {
	return &Node{
		attrs:    NewAttrSet(descs),
		children: make(map[string]*Node),
		lists:    make(map[string]*InstanceList),
	}
}

// Attrs returns the node's attribute store.
func (n *Node) Attrs() *AttrSet {
	return n.attrs
}

// AddChild registers a singleton child group. Re-registering a name
// replaces the previous node but keeps its position in write order.
func (n *Node) AddChild(name string, child *Node) {
	if _, ok := n.children[name]; !ok {
		n.childOrder = append(n.childOrder, name)
	}
	n.children[name] = child
}

// Child returns the singleton child group registered under name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Instances returns the numbered-instance list for a stem, creating it on
// first use.
func (n *Node) Instances(stem string) *InstanceList {
	l, ok := n.lists[stem]
	if !ok {
		l = NewInstanceList(stem)
		n.lists[stem] = l
		n.listOrder = append(n.listOrder, stem)
	}
	return l
}

// ListStems returns the stems of the node's instance lists in creation
// order.
func (n *Node) ListStems() []string {
	out := make([]string, len(n.listOrder))
	copy(out, n.listOrder)
	return out
}

// InitializeProperties applies descriptor defaults to this node, and with
// recursive true to every child group and instance below it.
func (n *Node) InitializeProperties(overwrite, recursive bool) error {
	if err := n.attrs.InitializeDefaults(overwrite); err != nil {
		return err
	}
	if !recursive {
		return nil
	}
	for _, name := range n.childOrder {
		if err := n.children[name].InitializeProperties(overwrite, recursive); err != nil {
			return err
		}
	}
	for _, stem := range n.listOrder {
		err := n.lists[stem].Each(func(_ string, node *Node) error {
			return node.InitializeProperties(overwrite, recursive)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSimpleAttrs flushes only this node's own attributes to the container
// at path, in registry order. The group must already exist. Used for the
// metadata pass that runs after dataset geometry is known.
func (n *Node) WriteSimpleAttrs(w AttrWriter, path string) error {
	if missing := n.attrs.MissingRequired(); len(missing) > 0 {
		return &ErrRequiredAttribute{Key: missing[0], Node: path}
	}
	for _, key := range n.attrs.Descriptors().Keys() {
		v, ok := n.attrs.values[key]
		if !ok {
			continue
		}
		if err := w.SetAttr(path, key, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo creates the group at path and flushes the whole subtree below the
// node: own attributes first, then singleton children, then numbered
// instances in append order.
func (n *Node) WriteTo(w AttrWriter, path string) error {
	if err := w.CreateGroup(path); err != nil {
		return err
	}
	if err := n.WriteSimpleAttrs(w, path); err != nil {
		return err
	}
	for _, name := range n.childOrder {
		if err := n.children[name].WriteTo(w, joinPath(path, name)); err != nil {
			return err
		}
	}
	for _, stem := range n.listOrder {
		err := n.lists[stem].Each(func(name string, node *Node) error {
			return node.WriteTo(w, joinPath(path, name))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func joinPath(base, name string) string {
	if base == "" || base == "/" {
		return "/" + name
	}
	return base + "/" + name
}
