package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFound("order not found")); got != KindNotFound {
		t.Fatalf("KindOf = %v, want KindNotFound", got)
	}
	if got := KindOf(errors.New("boom")); got != KindInternal {
		t.Fatalf("KindOf(untyped) = %v, want KindInternal", got)
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("create order: %w", InvalidInput("invalid service type"))
	if got := KindOf(err); got != KindInvalidInput {
		t.Fatalf("KindOf(wrapped) = %v, want KindInvalidInput", got)
	}
	if got := MessageOf(err); got != "invalid service type" {
		t.Fatalf("MessageOf(wrapped) = %q", got)
	}
}

func TestMessageOfUntyped(t *testing.T) {
	if got := MessageOf(errors.New("pq: relation does not exist")); got != "internal error" {
		t.Fatalf("MessageOf leaked storage detail: %q", got)
	}
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("query failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("Internal should wrap its cause")
	}
}
