package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/passforge/passforge-go/internal/codec"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

var errUnknownCommand = errors.New("unknown command, type 'help' for a list of commands")

const shellHelp = `Commands:
  generate [length] [count]     generate passwords (alias: gen)
  set <class> <on|off>          toggle uppercase, numbers or symbols
  options                       show the current options
  history                       list generated passwords, newest first
  clear                         clear the history
  export <file>                 save the history to a .passforge file
  load <file>                   append passwords from a .passforge file
  copy                          copy the current password to the clipboard
  strength [password]           classify a password (default: current)
  help                          show this help
  exit, quit                    leave the shell
`

// Shell is the interactive PassForge prompt. It owns one session.
type Shell struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool

	session   *repository.Session
	generator *service.GeneratorService
	history   *service.HistoryService
	copy      func(string) error

	options crypto.CharsetOptions
	length  int
}

// NewShell creates a shell reading commands from in. Prompts are written only
// when interactive is true.
func NewShell(in io.Reader, out io.Writer, interactive bool, copyFn func(string) error) *Shell {
	return &Shell{
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		session:     repository.NewSession(),
		generator:   service.NewGeneratorService(crypto.MaxBatchSize),
		history:     service.NewHistoryService(),
		copy:        copyFn,
		options:     crypto.DefaultCharsetOptions(),
		length:      model.DefaultLength,
	}
}

// Session returns the session the shell operates on.
func (s *Shell) Session() *repository.Session {
	return s.session
}

// Run reads and executes commands until exit, quit or end of input.
func (s *Shell) Run() error {
	if s.interactive {
		fmt.Fprintln(s.out, "=== PassForge ===")
		fmt.Fprintln(s.out, "Type 'help' for a list of commands.")
	}

	for {
		line, ok := s.readLine("passforge> ")
		if !ok {
			if s.interactive {
				fmt.Fprintln(s.out)
			}
			return s.in.Err()
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if err := s.Execute(line); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) readLine(prompt string) (string, bool) {
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// Execute runs a single shell command line.
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "generate", "gen":
		return s.generate(args)
	case "set":
		return s.set(args)
	case "options":
		s.printOptions()
		return nil
	case "history":
		s.printHistory()
		return nil
	case "clear":
		s.clear()
		return nil
	case "export":
		return s.export(args)
	case "load":
		return s.load(args)
	case "copy":
		return s.copyCurrent()
	case "strength":
		return s.strength(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])))
	case "help":
		fmt.Fprint(s.out, shellHelp)
		return nil
	default:
		return errUnknownCommand
	}
}

func (s *Shell) generate(args []string) error {
	req := model.GenerateRequest{
		Length:    s.length,
		Count:     model.DefaultCount,
		Uppercase: &s.options.Uppercase,
		Numbers:   &s.options.Numbers,
		Symbols:   &s.options.Symbols,
	}

	var err error
	if len(args) > 0 {
		if req.Length, err = crypto.ParsePositive(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		if req.Count, err = crypto.ParsePositive(args[1]); err != nil {
			return err
		}
	}

	resp, err := s.generator.Generate(s.session, req)
	if err != nil {
		return err
	}
	s.length = resp.Length

	if resp.Warning != "" {
		fmt.Fprintf(s.out, "Warning: %s\n", resp.Warning)
	}
	for _, p := range resp.Passwords {
		fmt.Fprintln(s.out, p)
	}
	fmt.Fprintf(s.out, "Strength: %s\n", resp.Strength)
	return nil
}

func (s *Shell) set(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set <uppercase|numbers|symbols> <on|off>")
	}

	on, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	switch strings.ToLower(args[0]) {
	case "uppercase", "upper":
		s.options.Uppercase = on
	case "numbers", "digits":
		s.options.Numbers = on
	case "symbols":
		s.options.Symbols = on
	default:
		return fmt.Errorf("unknown character class %q", args[0])
	}

	s.printOptions()
	return nil
}

func (s *Shell) printOptions() {
	fmt.Fprintf(s.out, "length=%d uppercase=%s numbers=%s symbols=%s\n",
		s.length, onOff(s.options.Uppercase), onOff(s.options.Numbers), onOff(s.options.Symbols))
}

func (s *Shell) printHistory() {
	entries := s.history.List(s.session).Entries
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "History is empty.")
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Fprintf(s.out, "%4d  %s\n", i+1, entries[i])
	}
}

func (s *Shell) clear() {
	n := s.session.History.Len()
	if n == 0 {
		fmt.Fprintln(s.out, "History is already empty.")
		return
	}

	if s.interactive {
		answer, ok := s.readLine(fmt.Sprintf("Clear all %d passwords? [y/N]: ", n))
		if !ok || !parseYesNo(answer) {
			fmt.Fprintln(s.out, "Cancelled.")
			return
		}
	}

	s.history.Clear(s.session)
	fmt.Fprintln(s.out, "History cleared.")
}

func (s *Shell) export(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: export <file>")
	}

	path, err := s.history.ExportFile(s.session, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Exported %d passwords to %s\n", s.session.History.Len(), path)
	return nil
}

func (s *Shell) load(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: load <file>")
	}

	resp, err := s.history.ImportFile(s.session, args[0])
	if err != nil {
		var decodeErr *codec.DecodeError
		if errors.As(err, &decodeErr) {
			return fmt.Errorf("failed to load %s: %w", args[0], decodeErr.Err)
		}
		return err
	}
	fmt.Fprintf(s.out, "Loaded %d passwords (%d in history).\n", resp.Imported, resp.Total)
	return nil
}

func (s *Shell) copyCurrent() error {
	current, err := s.history.Current(s.session)
	if err != nil {
		return err
	}
	if err := s.copy(current.Password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintln(s.out, "Password copied to clipboard!")
	return nil
}

func (s *Shell) strength(password string) error {
	if password == "" {
		current, err := s.history.Current(s.session)
		if err != nil {
			return err
		}
		password = current.Password
	}

	resp := s.generator.Strength(password)
	fmt.Fprintf(s.out, "Strength: %s (%d of 4 character classes)\n", resp.Strength, resp.Score)
	return nil
}

func parseOnOff(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", v)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// parseYesNo returns true for "y" / "yes" (case-insensitive), false otherwise.
func parseYesNo(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "y" || s == "yes"
}
