// Package shell implements the interactive menu for generating, copying, saving
// and reviewing passwords.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/history"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const bannerWidth = 50

// errInputClosed ends the session when stdin reaches EOF mid-prompt.
var errInputClosed = errors.New("input closed")

// Saver persists a password and reports the outcome.
type Saver interface {
	Save(ctx context.Context, password string) model.SaveResult
}

// Shell runs the interactive menu over an input and output stream.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	copier  clipboard.Copier
	saver   Saver
	history *history.Log
}

// Option configures a Shell.
type Option func(*Shell)

// WithClipboard enables the copy-to-clipboard prompt.
func WithClipboard(c clipboard.Copier) Option {
	return func(s *Shell) { s.copier = c }
}

// WithSaver enables the save-to-file prompt.
func WithSaver(saver Saver) Option {
	return func(s *Shell) { s.saver = saver }
}

// New creates a Shell reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		history: history.NewLog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// History returns the log the shell records into.
func (s *Shell) History() *history.Log {
	return s.history
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	s.banner("Welcome to the Advanced Password Generator")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.menu()
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			if err := s.generate(ctx); err != nil {
				return s.finish(err)
			}
		case "2":
			s.showHistory()
		case "3":
			s.banner("Thanks for using the Password Generator")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		s.banner("Thanks for using the Password Generator")
		return nil
	}
	return err
}

func (s *Shell) banner(title string) {
	line := strings.Repeat("=", bannerWidth)
	inner := bannerWidth - 2
	pad := max(inner-len(title), 0)
	left := pad / 2

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "|%s%s%s|\n", strings.Repeat(" ", left), color.New(color.Bold).Sprint(title), strings.Repeat(" ", pad-left))
	fmt.Fprintln(s.out, line)
}

func (s *Shell) menu() (string, error) {
	fmt.Fprintln(s.out, "\nOptions:")
	fmt.Fprintln(s.out, "1. Generate a new password")
	fmt.Fprintln(s.out, "2. View password history")
	fmt.Fprintln(s.out, "3. Exit")
	return s.prompt("\nEnter your choice (1-3): ")
}

func (s *Shell) generate(ctx context.Context) error {
	length, err := s.readLength()
	if err != nil {
		return err
	}
	classes, err := s.readClasses()
	if err != nil {
		return err
	}

	resp, err := service.GenerateWith(length, classes)
	if err != nil {
		return err
	}
	s.history.Append(resp.Password, resp.Strength)

	sep := strings.Repeat("-", bannerWidth)
	fmt.Fprintln(s.out, "\n"+sep)
	fmt.Fprintf(s.out, "Your password: %s\n", color.New(color.Bold).Sprint(resp.Password))
	fmt.Fprintf(s.out, "Strength: %s\n", StrengthColor(resp.Strength).Sprint(resp.Strength))
	fmt.Fprintln(s.out, sep)

	if s.copier != nil {
		yes, err := s.askYesNo("\nCopy to clipboard? (y/n): ")
		if err != nil {
			return err
		}
		if yes {
			if err := s.copier.Copy(resp.Password); err != nil {
				color.New(color.FgYellow).Fprintf(s.out, "Could not copy to clipboard: %v\n", err)
			} else {
				color.New(color.FgGreen).Fprintln(s.out, "Password copied to clipboard successfully!")
			}
		}
	}

	if s.saver != nil {
		yes, err := s.askYesNo("Save to file? (y/n): ")
		if err != nil {
			return err
		}
		if yes {
			if res := s.saver.Save(ctx, resp.Password); res.Saved {
				color.New(color.FgGreen).Fprintf(s.out, "Password saved to %s!\n", res.Location)
			} else {
				color.New(color.FgYellow).Fprintln(s.out, "Could not save to file.")
			}
		}
	}

	return nil
}

func (s *Shell) readLength() (int, error) {
	for {
		answer, err := s.prompt(fmt.Sprintf("\nEnter the length of password (minimum %d): ", crypto.MinLength))
		if err != nil {
			return 0, err
		}

		length, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}

		switch crypto.ValidateLength(length) {
		case crypto.ErrLengthTooShort:
			fmt.Fprintf(s.out, "Password must be at least %d characters long.\n", crypto.MinLength)
		case crypto.ErrLengthTooLong:
			fmt.Fprintf(s.out, "Password must be at most %d characters long.\n", crypto.MaxLength)
		default:
			return length, nil
		}
	}
}

var classPrompts = [...]struct {
	class  crypto.CharacterClass
	prompt string
}{
	{crypto.Lowercase, "Include lowercase letters (a-z)? (y/n): "},
	{crypto.Uppercase, "Include uppercase letters (A-Z)? (y/n): "},
	{crypto.Digit, "Include numbers (0-9)? (y/n): "},
	{crypto.Symbol, "Include symbols (!@#$%)? (y/n): "},
}

func (s *Shell) readClasses() (crypto.ClassSet, error) {
	fmt.Fprintln(s.out, "\nPassword character options:")

	var classes crypto.ClassSet
	for _, p := range classPrompts {
		yes, err := s.askYesNo(p.prompt)
		if err != nil {
			return 0, err
		}
		if yes {
			classes = classes.With(p.class)
		}
	}

	if classes.IsEmpty() {
		fmt.Fprintln(s.out, "You must select at least one character type. Using all types.")
		classes = classes.Normalize()
	}
	return classes, nil
}

func (s *Shell) showHistory() {
	entries := s.history.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "\nNo passwords generated yet.")
		return
	}

	fmt.Fprintln(s.out, "\nPassword History:")
	for i, e := range entries {
		fmt.Fprintf(s.out, "%d. %s - %s\n", i+1, e.Password, StrengthColor(e.Strength).Sprint(e.Strength))
	}
}

func (s *Shell) askYesNo(question string) (bool, error) {
	for {
		answer, err := s.prompt(question)
		if err != nil {
			return false, err
		}
		if yes, ok := ParseYesNo(answer); ok {
			return yes, nil
		}
		fmt.Fprintln(s.out, "Please enter 'y' or 'n'.")
	}
}

func (s *Shell) prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(s.out)
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ParseYesNo accepts y/yes and n/no in any case. ok is false for anything else.
func ParseYesNo(answer string) (yes, ok bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

// StrengthColor picks the display colour for a strength label.
func StrengthColor(s crypto.Strength) *color.Color {
	switch s {
	case crypto.VeryStrong:
		return color.New(color.FgGreen, color.Bold)
	case crypto.Strong:
		return color.New(color.FgGreen)
	case crypto.Moderate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
