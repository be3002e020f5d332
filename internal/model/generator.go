package model

import "github.com/vaultpass/passgen-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
// FallbackApplied is set when every class was disabled and all four were used instead.
type GenerateResponse struct {
	Password        string          `json:"password"`
	Length          int             `json:"length"`
	Strength        crypto.Strength `json:"strength"`
	Classes         []string        `json:"classes"`
	FallbackApplied bool            `json:"fallback_applied,omitempty"`
}

// EvaluateRequest asks for the strength of an arbitrary password.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse reports a strength label with the inputs that produced it.
type EvaluateResponse struct {
	Strength  crypto.Strength `json:"strength"`
	Length    int             `json:"length"`
	Diversity int             `json:"diversity"`
}
