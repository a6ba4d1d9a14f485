// Package dsa holds the hand-built data structures behind salesdesk: linked
// list cells, a generic list-walking search utility, a linked stack and queue,
// and an unbalanced binary search tree with per-value frequency.
//
// Nothing in this package is safe for concurrent mutation.
package dsa

// ─── List Cells ─────────────────────────────────────────────────────────────

// SinglyNode is a value cell with a forward link.
type SinglyNode struct {
	value float64
	next  *SinglyNode
}

// NewSinglyNode returns an unlinked cell holding v.
func NewSinglyNode(v float64) *SinglyNode { return &SinglyNode{value: v} }

func (n *SinglyNode) Value() float64           { return n.value }
func (n *SinglyNode) SetValue(v float64)       { n.value = v }
func (n *SinglyNode) Next() *SinglyNode        { return n.next }
func (n *SinglyNode) SetNext(next *SinglyNode) { n.next = next }

// DoublyNode is a value cell with forward and backward links. The backward
// link is a traversal aid only; the owning list reaches every cell from head.
type DoublyNode struct {
	value float64
	next  *DoublyNode
	prev  *DoublyNode
}

// NewDoublyNode returns an unlinked cell holding v.
func NewDoublyNode(v float64) *DoublyNode { return &DoublyNode{value: v} }

func (n *DoublyNode) Value() float64           { return n.value }
func (n *DoublyNode) SetValue(v float64)       { n.value = v }
func (n *DoublyNode) Next() *DoublyNode        { return n.next }
func (n *DoublyNode) SetNext(next *DoublyNode) { n.next = next }
func (n *DoublyNode) Prev() *DoublyNode        { return n.prev }
func (n *DoublyNode) SetPrev(prev *DoublyNode) { n.prev = prev }

// ─── Tree Cell ──────────────────────────────────────────────────────────────

// TreeNode is a BST cell. Equal inserts bump frequency instead of adding
// cells, so frequency is always >= 1.
type TreeNode struct {
	value     float64
	frequency int
	left      *TreeNode
	right     *TreeNode
}

func newTreeNode(v float64) *TreeNode {
	return &TreeNode{value: v, frequency: 1}
}

func (n *TreeNode) Value() float64   { return n.value }
func (n *TreeNode) Frequency() int   { return n.frequency }
func (n *TreeNode) Left() *TreeNode  { return n.left }
func (n *TreeNode) Right() *TreeNode { return n.right }
func (n *TreeNode) entry() Entry     { return Entry{Value: n.value, Frequency: n.frequency} }
