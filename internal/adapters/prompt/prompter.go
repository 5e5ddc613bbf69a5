// Package prompt asks the operator for credentials and for permission to reuse the entity cache.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

const (
	// EnvEmail presets the account email.
	EnvEmail = "WODL_EMAIL"
	// EnvPassword presets the account password.
	EnvPassword = "WODL_PASSWORD"
)

// Prompter implements ports.Prompter on the process terminal.
type Prompter struct {
	in           io.Reader
	out          io.Writer
	getenv       func(string) string
	isTerminal   func() bool
	readPassword func() ([]byte, error)
	teaOptions   []tea.ProgramOption
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithIO replaces stdin and stderr.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *Prompter) {
		p.in = in
		p.out = out
	}
}

// WithEnv replaces os.Getenv.
func WithEnv(getenv func(string) string) Option {
	return func(p *Prompter) {
		p.getenv = getenv
	}
}

// WithTerminal overrides terminal detection and password input.
func WithTerminal(isTerminal func() bool, readPassword func() ([]byte, error)) Option {
	return func(p *Prompter) {
		p.isTerminal = isTerminal
		p.readPassword = readPassword
	}
}

// WithTeaOptions passes extra options to the confirmation program.
func WithTeaOptions(opts ...tea.ProgramOption) Option {
	return func(p *Prompter) {
		p.teaOptions = append(p.teaOptions, opts...)
	}
}

// New creates a Prompter reading from stdin and writing to stderr.
func New(opts ...Option) *Prompter {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit in int
	p := &Prompter{
		in:           os.Stdin,
		out:          os.Stderr,
		getenv:       os.Getenv,
		isTerminal:   func() bool { return term.IsTerminal(fd) },
		readPassword: func() ([]byte, error) { return term.ReadPassword(fd) },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Credentials fills in whatever preset lacks, from the environment first and then interactively.
// The password is only read from a terminal, without echo.
func (p *Prompter) Credentials(_ context.Context, preset domain.Credentials) (domain.Credentials, error) {
	creds := preset
	if creds.Email == "" {
		creds.Email = p.getenv(EnvEmail)
	}
	if creds.Password == "" {
		creds.Password = p.getenv(EnvPassword)
	}

	if creds.Email == "" {
		email, err := p.readLine("Enter email: ")
		if err != nil {
			return domain.Credentials{}, err
		}
		creds.Email = email
	}

	if creds.Password == "" {
		if !p.isTerminal() {
			return domain.Credentials{}, zerr.With(domain.ErrMissingCredentials, "hint", "set "+EnvPassword)
		}
		_, _ = fmt.Fprint(p.out, "Enter password: ")
		password, err := p.readPassword()
		_, _ = fmt.Fprintln(p.out)
		if err != nil {
			return domain.Credentials{}, zerr.Wrap(err, domain.ErrPromptFailed.Error())
		}
		creds.Password = string(password)
	}

	if !creds.Complete() {
		return domain.Credentials{}, domain.ErrMissingCredentials
	}
	return creds, nil
}

// readLine reads up to and including the next newline one byte at a time, so that nothing
// beyond the line is consumed from the shared input.
func (p *Prompter) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := p.in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrPromptFailed.Error())
		}
	}
	return strings.TrimSpace(string(line)), nil
}

// ConfirmReuse asks whether the persisted cache should be used. Without a terminal the cache
// is not reused.
func (p *Prompter) ConfirmReuse(ctx context.Context, freshness domain.CacheFreshness) (bool, error) {
	if !p.isTerminal() {
		return false, nil
	}

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	}, p.teaOptions...)

	final, err := tea.NewProgram(newConfirmModel(reuseQuestion(freshness)), opts...).Run()
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	m, ok := final.(confirmModel)
	if ok && m.aborted {
		return false, domain.ErrPromptAborted
	}
	return ok && m.accepted, nil
}

func reuseQuestion(f domain.CacheFreshness) string {
	return fmt.Sprintf("Subpage cache found %d files with oldest age of: %s. Would you like to use it?",
		f.Files, f.FormatAge())
}
