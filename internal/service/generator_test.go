package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(0)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != DefaultLength {
		t.Errorf("expected length %d, got %d", DefaultLength, resp.Length)
	}
	if len(resp.Password) != DefaultLength {
		t.Errorf("expected password length %d, got %d", DefaultLength, len(resp.Password))
	}
	if resp.FallbackApplied {
		t.Error("fallback should not apply when classes default to enabled")
	}
	if !reflect.DeepEqual(resp.Classes, []string{"lowercase", "uppercase", "digits", "symbols"}) {
		t.Errorf("unexpected classes %v", resp.Classes)
	}
	if resp.Strength != crypto.VeryStrong {
		t.Errorf("16 characters covering all classes should be Very Strong, got %s", resp.Strength)
	}
}

func TestGenerate_ConfiguredDefaultLength(t *testing.T) {
	svc := NewGeneratorService(24)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 24 {
		t.Errorf("expected length 24, got %d", resp.Length)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(0)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
	if resp.Strength != crypto.Moderate {
		t.Errorf("two classes at length 32 should be Moderate, got %s", resp.Strength)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService(0)
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, crypto.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(0)
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, crypto.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypesFallsBackToAll(t *testing.T) {
	svc := NewGeneratorService(0)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.FallbackApplied {
		t.Error("expected FallbackApplied when every class is disabled")
	}
	if got := crypto.PresentClasses(resp.Password); got != crypto.AllClasses {
		t.Errorf("password %q covers %s, want all classes", resp.Password, got)
	}
}

func TestGenerateWith_InvalidLength(t *testing.T) {
	_, err := GenerateWith(2, crypto.AllClasses)
	if !errors.Is(err, crypto.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	svc := NewGeneratorService(0)

	resp, err := svc.Evaluate("Aa1!Aa1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.EvaluateResponse{Strength: crypto.Moderate, Length: 8, Diversity: 4}
	if resp != want {
		t.Errorf("Evaluate() = %+v, want %+v", resp, want)
	}

	if _, err := svc.Evaluate(""); err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}
