package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

type generateOptions struct {
	length       int
	lower        bool
	upper        bool
	digits       bool
	symbols      bool
	classNames   []string
	count        int
	copy         bool
	save         bool
	showStrength bool
}

func (o generateOptions) classes() (crypto.ClassSet, error) {
	var s crypto.ClassSet
	for _, name := range o.classNames {
		c, err := crypto.ParseClass(name)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	if o.lower {
		s = s.With(crypto.Lowercase)
	}
	if o.upper {
		s = s.With(crypto.Uppercase)
	}
	if o.digits {
		s = s.With(crypto.Digit)
	}
	if o.symbols {
		s = s.With(crypto.Symbol)
	}
	return s, nil
}

func newGenerateCommand(a *app) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords without prompting.",
		Example: `  passgen generate
  passgen generate -l 24 --lower --digits
  passgen generate --classes upper,digits
  passgen generate -c 5 --strength
  passgen generate --copy --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.length, "length", "l", a.cfg.DefaultLength, fmt.Sprintf("Password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	flags.BoolVar(&opts.lower, "lower", false, "Include lowercase letters (a-z)")
	flags.BoolVar(&opts.upper, "upper", false, "Include uppercase letters (A-Z)")
	flags.BoolVarP(&opts.digits, "digits", "d", false, "Include digits (0-9)")
	flags.BoolVarP(&opts.symbols, "symbols", "s", false, "Include punctuation symbols")
	flags.StringSliceVar(&opts.classNames, "classes", nil, "Comma-separated classes to include: lower, upper, digits, symbols")
	flags.IntVarP(&opts.count, "count", "c", 1, "Number of passwords to generate")
	flags.BoolVar(&opts.copy, "copy", false, "Copy the generated passwords to the clipboard")
	flags.BoolVar(&opts.save, "save", false, "Append the generated passwords to the password log")
	flags.BoolVar(&opts.showStrength, "strength", false, "Print the strength label next to each password")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts generateOptions) error {
	if err := crypto.ValidateLength(opts.length); err != nil {
		return err
	}
	if opts.count < 1 {
		return errors.New("count must be at least 1")
	}

	// No class flags means every class, via the generator's empty-set fallback.
	classes, err := opts.classes()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results := make([]model.GenerateResponse, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		resp, err := service.GenerateWith(opts.length, classes)
		if err != nil {
			return err
		}
		results = append(results, resp)

		if opts.showStrength {
			fmt.Fprintf(out, "%s\t%s\n", resp.Password, resp.Strength)
		} else {
			fmt.Fprintln(out, resp.Password)
		}
	}

	errOut := cmd.ErrOrStderr()

	if opts.copy {
		passwords := make([]string, len(results))
		for i, r := range results {
			passwords[i] = r.Password
		}
		if a.copier == nil {
			fmt.Fprintln(errOut, "Clipboard is not available on this system.")
		} else if err := a.copier.Copy(strings.Join(passwords, "\n")); err != nil {
			fmt.Fprintf(errOut, "Could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(errOut, "Copied to clipboard.")
		}
	}

	if opts.save {
		log, closeLog := a.openLog(cmd.Context())
		defer closeLog()

		archive := service.NewArchiveService(log)
		for _, r := range results {
			if res := archive.Save(cmd.Context(), r.Password); !res.Saved {
				fmt.Fprintln(errOut, "Could not save to file.")
				return nil
			}
		}
		fmt.Fprintf(errOut, "Saved to %s.\n", log.Location())
	}

	return nil
}
