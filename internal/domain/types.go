// Package domain defines the core value types, contracts, and errors shared by
// every salesdesk layer. It has no infrastructure dependency.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// ─── Repository Kind ────────────────────────────────────────────────────────

// RepositoryKind selects the backing structure of a SequenceRepository.
type RepositoryKind string

const (
	KindArray        RepositoryKind = "array"
	KindSinglyLinked RepositoryKind = "singly"
	KindDoublyLinked RepositoryKind = "doubly"
)

// RepositoryKinds lists every supported kind in display order.
func RepositoryKinds() []RepositoryKind {
	return []RepositoryKind{KindArray, KindSinglyLinked, KindDoublyLinked}
}

// ParseRepositoryKind accepts the canonical names plus a few aliases.
func ParseRepositoryKind(s string) (RepositoryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "array", "arr":
		return KindArray, nil
	case "singly", "single", "simple", "list":
		return KindSinglyLinked, nil
	case "doubly", "double":
		return KindDoublyLinked, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRepoKind, s)
}

// DisplayName returns a human-readable label.
func (k RepositoryKind) DisplayName() string {
	switch k {
	case KindArray:
		return "Array"
	case KindSinglyLinked:
		return "Singly Linked List"
	case KindDoublyLinked:
		return "Doubly Linked List"
	}
	return string(k)
}

// ─── Entity ─────────────────────────────────────────────────────────────────

// Entity names one of the two parallel collections held by the service.
type Entity string

const (
	EntitySales   Entity = "sales"
	EntityTargets Entity = "targets"
)

// ParseEntity resolves "sales"/"targets" (and singular forms).
func ParseEntity(s string) (Entity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sales", "sale":
		return EntitySales, nil
	case "targets", "target":
		return EntityTargets, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, s)
}

// ─── Orders ─────────────────────────────────────────────────────────────────

// OrderStatus is a step of the order lifecycle.
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderInProcess
	OrderCompleted
	OrderCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderInProcess:
		return "In Process"
	case OrderCompleted:
		return "Completed"
	case OrderCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// Order is a unit of work moving through the order queue. ID and
// Description never change after creation.
type Order struct {
	ID          uint64      `json:"id"`
	Description string      `json:"description"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ─── Reporting ──────────────────────────────────────────────────────────────

// MonthSlot identifies a month (0-based) together with the value shown for it.
type MonthSlot struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

// Label renders the slot with a 1-based month number.
func (m MonthSlot) Label() string {
	return fmt.Sprintf("Month %d: %.2f", m.Month+1, m.Value)
}

// Compliance is the target outcome of a single month.
type Compliance int

const (
	ComplianceNotApplicable Compliance = iota
	ComplianceMet
	ComplianceMissed
)

func (c Compliance) String() string {
	switch c {
	case ComplianceMet:
		return "met"
	case ComplianceMissed:
		return "missed"
	}
	return "n/a"
}

// MarshalText encodes the outcome by name.
func (c Compliance) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// DashboardRow pairs a month's sale with its target.
type DashboardRow struct {
	Month      int        `json:"month"`
	Sale       float64    `json:"sale"`
	Target     float64    `json:"target"`
	Compliance Compliance `json:"compliance"`
}

// Summary aggregates the current sales and target figures.
type Summary struct {
	Months       int     `json:"months"`
	TotalSales   float64 `json:"total_sales"`
	TotalTargets float64 `json:"total_targets"`
	MeanSale     float64 `json:"mean_sale"`
	MeanTarget   float64 `json:"mean_target"`
	StdDevSale   float64 `json:"stddev_sale"`
	StdDevTarget float64 `json:"stddev_target"`
	MonthsMet    int     `json:"months_met"`
}
