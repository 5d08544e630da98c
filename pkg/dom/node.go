package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
	KindComment             // Marker node, rendered as an HTML comment
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is a node in the live render tree.
type Node struct {
	Kind     Kind
	Tag      string            // Element tag name (e.g., "div")
	Text     string            // For KindText and KindComment
	Attrs    map[string]string // Attributes, KindElement only
	Parent   *Node
	Children []*Node
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewComment creates a detached comment node. Comments are used as stable
// placeholder markers by conditional bindings.
func NewComment(text string) *Node {
	return &Node{Kind: KindComment, Text: text}
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns the attribute value, or "" if unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// SetText replaces the content of a text or comment node.
func (n *Node) SetText(text string) {
	n.Text = text
}

// IndexOf returns the position of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// AppendChild appends child as the last child of parent, detaching it from
// any previous parent first.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	Remove(child)
	child.Parent = parent
	parent.Children = append(parent.Children, child)
}

// InsertBefore inserts child into parent immediately before ref. A nil ref
// or a ref that is not a child of parent appends instead.
func InsertBefore(parent, child, ref *Node) {
	if parent == nil || child == nil {
		return
	}
	Remove(child)
	idx := -1
	if ref != nil {
		idx = parent.IndexOf(ref)
	}
	if idx < 0 {
		child.Parent = parent
		parent.Children = append(parent.Children, child)
		return
	}
	child.Parent = parent
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[idx+1:], parent.Children[idx:])
	parent.Children[idx] = child
}

// Remove detaches child from its parent. Detached nodes are a no-op.
func Remove(child *Node) {
	if child == nil || child.Parent == nil {
		return
	}
	parent := child.Parent
	if idx := parent.IndexOf(child); idx >= 0 {
		parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)
	}
	child.Parent = nil
}
