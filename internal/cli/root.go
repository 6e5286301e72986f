// Package cli implements the passforge command line: an interactive shell and
// one-shot generate, strength and show commands built on spf13/cobra.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/passforge/passforge-go/internal/codec"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev" // set by the linker

// Options wires the command tree to its environment.
type Options struct {
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	Interactive bool
	Copy        func(string) error
}

// DefaultOptions uses the process's standard streams and the system clipboard.
func DefaultOptions() Options {
	return Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		Copy:        clipboard.WriteAll,
	}
}

// NewRootCommand builds the passforge command tree.
func NewRootCommand(opts Options) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate random passwords and keep a session history",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.Err, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewShell(opts.In, opts.Out, opts.Interactive, opts.Copy).Run()
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCommand(opts),
		newStrengthCommand(),
		newShowCommand(),
	)
	return root
}

// Execute runs the command tree with the process environment and returns the exit code.
func Execute() int {
	opts := DefaultOptions()
	if err := NewRootCommand(opts).Execute(); err != nil {
		fmt.Fprintf(opts.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newGenerateCommand(opts Options) *cobra.Command {
	req := model.DefaultGenerateRequest()
	uppercase, numbers, symbols := true, true, true
	var copyResult bool
	var exportPath string

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate one or more passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Uppercase, req.Numbers, req.Symbols = &uppercase, &numbers, &symbols

			sess := repository.NewSession()
			history := service.NewHistoryService()

			// Exporting appends to an existing file rather than replacing it.
			if exportPath != "" {
				exportPath = codec.EnsureExtension(exportPath)
				if _, err := history.ImportFile(sess, exportPath); err != nil && !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}

			resp, err := service.NewGeneratorService(crypto.MaxBatchSize).Generate(sess, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if resp.Warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", resp.Warning)
			}
			for _, p := range resp.Passwords {
				fmt.Fprintln(out, p)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Strength: %s\n", resp.Strength)

			if copyResult {
				if err := opts.Copy(resp.Password); err != nil {
					slog.Warn("clipboard copy failed", "error", err)
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "Password copied to clipboard!")
				}
			}

			if exportPath != "" {
				path, err := history.ExportFile(sess, exportPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d passwords to %s\n", sess.History.Len(), path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&req.Length, "length", "l", model.DefaultLength, "password length (1-128)")
	flags.IntVarP(&req.Count, "count", "c", model.DefaultCount, fmt.Sprintf("number of passwords to generate (1-%d)", crypto.MaxBatchSize))
	flags.BoolVar(&uppercase, "uppercase", true, "include uppercase letters")
	flags.BoolVar(&numbers, "numbers", true, "include digits")
	flags.BoolVar(&symbols, "symbols", true, "include symbols")
	flags.BoolVar(&copyResult, "copy", false, "copy the last generated password to the clipboard")
	flags.StringVar(&exportPath, "export", "", "append the generated passwords to a .passforge file")
	return cmd
}

func newStrengthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strength <password>",
		Short: "Classify a password as Weak, Medium or Strong",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := service.NewGeneratorService(crypto.MaxBatchSize).Strength(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), resp.Strength)
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "List the passwords stored in a .passforge file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := codec.ReadFile(args[0])
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
