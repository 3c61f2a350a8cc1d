package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(TypeInput, "bad value")
	if got := err.Error(); got != "[INPUT_ERROR] bad value" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(TypeParsing, "parse catalog", stderrors.New("unexpected token"))
	if !strings.Contains(wrapped.Error(), "unexpected token") {
		t.Errorf("wrapped message missing cause: %s", wrapped)
	}
	if stderrors.Unwrap(wrapped) == nil {
		t.Error("Unwrap() returned nil")
	}
}

func TestIsTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("select tier: %w", UnknownTier("Huge"))

	if !IsType(err, TypeUnknownCatalogKey) {
		t.Error("expected wrapped error to match TypeUnknownCatalogKey")
	}
	if IsType(err, TypeInput) {
		t.Error("did not expect TypeInput")
	}
	if IsType(stderrors.New("plain"), TypeInput) {
		t.Error("plain errors carry no type")
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(UnknownStorageClass("st1")); got != TypeUnknownCatalogKey {
		t.Errorf("TypeOf() = %s, want %s", got, TypeUnknownCatalogKey)
	}
	if got := TypeOf(stderrors.New("boom")); got != TypeInternal {
		t.Errorf("TypeOf(foreign) = %s, want %s", got, TypeInternal)
	}
}

func TestWithContext(t *testing.T) {
	err := UnknownTier("Huge")
	if err.Context["tier"] != "Huge" {
		t.Errorf("Context[tier] = %v, want Huge", err.Context["tier"])
	}

	err = InvalidInput("iops", "abc", stderrors.New("syntax"))
	if err.Context["field"] != "iops" {
		t.Errorf("Context[field] = %v, want iops", err.Context["field"])
	}
	if !err.Is(TypeInvalidInput) {
		t.Errorf("Type = %s, want %s", err.Type, TypeInvalidInput)
	}
}
