package dsa

// ─── Binary Search Tree ─────────────────────────────────────────────────────
// Unbalanced BST keyed by value. Sorted insertion degrades it to a list;
// that is accepted, no rebalancing is performed.

// Entry is a (value, frequency) pair produced by traversals and searches.
type Entry struct {
	Value     float64 `json:"value"`
	Frequency int     `json:"frequency"`
}

// Position describes where a found node hangs relative to its parent.
type Position int

const (
	PositionRoot Position = iota
	PositionLeftChild
	PositionRightChild
)

func (p Position) String() string {
	switch p {
	case PositionLeftChild:
		return "left child"
	case PositionRightChild:
		return "right child"
	}
	return "root"
}

// SearchResult is the detailed report returned by Search.
type SearchResult struct {
	Node      Entry
	Parent    Entry // zero when HasParent is false
	HasParent bool
	Level     int // root is level 0
	Position  Position
}

// BST is an ordered tree over float64 values with per-value frequency.
type BST struct {
	root  *TreeNode
	nodes int
}

// NewBST returns an empty tree.
func NewBST() *BST {
	return &BST{}
}

// BuildBST inserts values in order into a fresh tree.
func BuildBST(values []float64) *BST {
	t := NewBST()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Root exposes the root cell for read-only walks (nil when empty).
func (t *BST) Root() *TreeNode { return t.root }

// Len returns the number of distinct values (nodes) in the tree.
func (t *BST) Len() int { return t.nodes }

// Empty reports whether the tree has no nodes.
func (t *BST) Empty() bool { return t.root == nil }

// Insert adds v, or increments the frequency of the node already holding v.
func (t *BST) Insert(v float64) {
	t.root = t.insert(t.root, v)
}

func (t *BST) insert(n *TreeNode, v float64) *TreeNode {
	if n == nil {
		t.nodes++
		return newTreeNode(v)
	}
	switch {
	case v < n.value:
		n.left = t.insert(n.left, v)
	case v > n.value:
		n.right = t.insert(n.right, v)
	default:
		n.frequency++
	}
	return n
}

// Search looks v up and reports the node, its parent, depth, and position.
func (t *BST) Search(v float64) (SearchResult, bool) {
	var parent *TreeNode
	level := 0
	for cur := t.root; cur != nil; level++ {
		if v == cur.value {
			res := SearchResult{Node: cur.entry(), Level: level, Position: PositionRoot}
			if parent != nil {
				res.Parent = parent.entry()
				res.HasParent = true
				if parent.left == cur {
					res.Position = PositionLeftChild
				} else {
					res.Position = PositionRightChild
				}
			}
			return res, true
		}
		parent = cur
		if v < cur.value {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return SearchResult{}, false
}

// Contains reports whether v is in the tree.
func (t *BST) Contains(v float64) bool {
	_, ok := t.Search(v)
	return ok
}

// Delete removes the node holding v, whatever its frequency, and reports
// whether one was found.
//
// A node with two children is replaced by a new node carrying the in-order
// successor's value and frequency; the successor is then removed from the
// right subtree. Node identity is therefore not stable across such a delete.
func (t *BST) Delete(v float64) bool {
	var removed bool
	t.root = t.delete(t.root, v, &removed)
	if removed {
		t.nodes--
	}
	return removed
}

func (t *BST) delete(n *TreeNode, v float64, removed *bool) *TreeNode {
	if n == nil {
		return nil
	}
	switch {
	case v < n.value:
		n.left = t.delete(n.left, v, removed)
		return n
	case v > n.value:
		n.right = t.delete(n.right, v, removed)
		return n
	}

	*removed = true
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	succ := minNode(n.right)
	replacement := &TreeNode{value: succ.value, frequency: succ.frequency, left: n.left}
	var ignored bool
	replacement.right = t.delete(n.right, succ.value, &ignored)
	return replacement
}

func minNode(n *TreeNode) *TreeNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode(n *TreeNode) *TreeNode {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest entry.
func (t *BST) Min() (Entry, bool) {
	if t.root == nil {
		return Entry{}, false
	}
	return minNode(t.root).entry(), true
}

// Max returns the largest entry.
func (t *BST) Max() (Entry, bool) {
	if t.root == nil {
		return Entry{}, false
	}
	return maxNode(t.root).entry(), true
}

// Height returns the number of levels (0 for an empty tree).
func (t *BST) Height() int {
	return height(t.root)
}

func height(n *TreeNode) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// ─── Traversals ─────────────────────────────────────────────────────────────
// Each call materializes the full sequence from scratch.

// InOrder returns entries in ascending value order.
func (t *BST) InOrder() []Entry {
	out := make([]Entry, 0, t.nodes)
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.entry())
		walk(n.right)
	}
	walk(t.root)
	return out
}

// PreOrder returns entries node-left-right.
func (t *BST) PreOrder() []Entry {
	out := make([]Entry, 0, t.nodes)
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			return
		}
		out = append(out, n.entry())
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// PostOrder returns entries left-right-node.
func (t *BST) PostOrder() []Entry {
	out := make([]Entry, 0, t.nodes)
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.entry())
	}
	walk(t.root)
	return out
}
