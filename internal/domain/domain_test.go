package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRepositoryKind(t *testing.T) {
	tests := []struct {
		in   string
		want RepositoryKind
	}{
		{"array", KindArray},
		{" ARR ", KindArray},
		{"singly", KindSinglyLinked},
		{"simple", KindSinglyLinked},
		{"Doubly", KindDoublyLinked},
	}
	for _, tt := range tests {
		got, err := ParseRepositoryKind(tt.in)
		if err != nil {
			t.Fatalf("ParseRepositoryKind(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRepositoryKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	_, err := ParseRepositoryKind("tree")
	if !errors.Is(err, ErrUnknownRepoKind) || !errors.Is(err, ErrValidation) {
		t.Errorf("ParseRepositoryKind(tree) err = %v, want ErrUnknownRepoKind", err)
	}
}

func TestParseEntity(t *testing.T) {
	if e, err := ParseEntity("Target"); err != nil || e != EntityTargets {
		t.Errorf("ParseEntity(Target) = %q, %v", e, err)
	}
	if _, err := ParseEntity("regions"); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("ParseEntity(regions) err = %v", err)
	}
}

func TestValueRange_ParseValue(t *testing.T) {
	r := DefaultValueRange()
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{"1200.5", 1200.5, nil},
		{" 0 ", 0, nil},
		{"9999.99", 9999.99, nil},
		{"10000", 0, ErrValueOutOfRange},
		{"-1", 0, ErrValueOutOfRange},
		{"NaN", 0, ErrValueOutOfRange},
		{"abc", 0, ErrNotANumber},
		{"   ", 0, ErrEmptyInput},
	}
	for _, tt := range tests {
		got, err := r.ParseValue(tt.in, "sale")
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseValue(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseValue(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseIndex_OneBased(t *testing.T) {
	i, err := ParseIndex("3", "month")
	if err != nil || i != 2 {
		t.Fatalf("ParseIndex(3) = %d, %v, want 2", i, err)
	}
	if _, err := ParseIndex("x", "month"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("ParseIndex(x) err = %v", err)
	}
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		err, category error
	}{
		{ErrMonthLimitReached, ErrCapacity},
		{ErrOrderInProcess, ErrMisuse},
		{ErrUnsupportedOperation, ErrMisuse},
		{ErrDivisionByZero, ErrArithmetic},
		{ErrUnknownToken, ErrParse},
		{ErrEmptyDescription, ErrValidation},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.category) {
			t.Errorf("%v does not wrap %v", tt.err, tt.category)
		}
	}
}

func TestOrderStatus(t *testing.T) {
	if OrderInProcess.String() != "In Process" {
		t.Errorf("String() = %q", OrderInProcess.String())
	}
	if OrderPending.Terminal() || OrderInProcess.Terminal() {
		t.Error("pending and in-process must not be terminal")
	}
	if !OrderCompleted.Terminal() || !OrderCancelled.Terminal() {
		t.Error("completed and cancelled must be terminal")
	}
}

func TestMonthSlot_Label(t *testing.T) {
	got := MonthSlot{Month: 0, Value: 1200.5}.Label()
	if got != "Month 1: 1200.50" {
		t.Errorf("Label() = %q", got)
	}
}

func TestCompliance_JSON(t *testing.T) {
	b, err := json.Marshal(DashboardRow{Month: 1, Compliance: ComplianceMissed})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"month":1,"sale":0,"target":0,"compliance":"missed"}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}
