package service

import (
	"errors"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const DefaultLength = 16

var ErrPasswordRequired = errors.New("password is required")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. A non-positive
// defaultLength falls back to DefaultLength.
func NewGeneratorService(defaultLength int) *GeneratorService {
	if defaultLength <= 0 {
		defaultLength = DefaultLength
	}
	return &GeneratorService{defaultLength: defaultLength}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = s.defaultLength
	}
	if err := crypto.ValidateLength(length); err != nil {
		return model.GenerateResponse{}, err
	}

	var classes crypto.ClassSet
	if boolOrDefault(req.Lowercase, true) {
		classes = classes.With(crypto.Lowercase)
	}
	if boolOrDefault(req.Uppercase, true) {
		classes = classes.With(crypto.Uppercase)
	}
	if boolOrDefault(req.Numbers, true) {
		classes = classes.With(crypto.Digit)
	}
	if boolOrDefault(req.Symbols, true) {
		classes = classes.With(crypto.Symbol)
	}

	return GenerateWith(length, classes)
}

// GenerateWith runs the generator for an already validated length and reports
// whether the empty-selection fallback was applied.
func GenerateWith(length int, classes crypto.ClassSet) (model.GenerateResponse, error) {
	fallback := classes.IsEmpty()
	classes = classes.Normalize()

	password, err := crypto.Generate(length, classes)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password:        password,
		Length:          len(password),
		Strength:        crypto.Evaluate(password),
		Classes:         classes.Names(),
		FallbackApplied: fallback,
	}, nil
}

// Evaluate scores an arbitrary password.
func (s *GeneratorService) Evaluate(password string) (model.EvaluateResponse, error) {
	if password == "" {
		return model.EvaluateResponse{}, ErrPasswordRequired
	}
	return model.EvaluateResponse{
		Strength:  crypto.Evaluate(password),
		Length:    utf8.RuneCountInString(password),
		Diversity: crypto.Diversity(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
