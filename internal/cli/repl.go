package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/strcalc/internal/presentation/tui"
	"github.com/aretw0/strcalc/pkg/domain"
)

// Calculator is the part of the facade the REPL needs.
type Calculator interface {
	Calculate(ctx context.Context, raw string) domain.Result
}

// REPLOptions configures a REPL session.
type REPLOptions struct {
	// Interactive enables the banner, the prompt and colored output.
	Interactive bool
	// Render turns markdown into terminal output. Defaults to tui.PlainRenderer.
	Render  func(string) (string, error)
	Version string
}

// REPL reads one input per line, prints the sum or error and keeps an
// ephemeral history.
type REPL struct {
	calc    Calculator
	in      *bufio.Scanner
	out     io.Writer
	opts    REPLOptions
	History *History
}

// NewREPL creates a session reading from r and writing to w.
func NewREPL(calc Calculator, r io.Reader, w io.Writer, opts REPLOptions) *REPL {
	if opts.Render == nil {
		opts.Render = tui.PlainRenderer
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	return &REPL{
		calc:    calc,
		in:      scanner,
		out:     w,
		opts:    opts,
		History: NewHistory(HistoryLimit),
	}
}

var errQuit = errors.New("quit")

// inputResult is one line (or read failure) delivered by pump.
type inputResult struct {
	line string
	err  error
}

// cachePurger is implemented by calculators that memoize results.
type cachePurger interface {
	PurgeCache(ctx context.Context) error
}

// Run processes input until EOF, ":quit" or ctx cancellation.
// Lines are read on a separate goroutine so cancellation is observed while
// waiting for input.
func (r *REPL) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.opts.Interactive {
		tui.PrintBanner(r.out, r.opts.Version)
	}

	pumpCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := make(chan inputResult)
	go r.pump(pumpCtx, lines)

	for {
		r.prompt()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-lines:
			if !ok {
				return nil
			}
			if in.err != nil {
				return in.err
			}
			if err := r.handle(ctx, strings.TrimRight(in.line, "\r")); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// pump feeds scanned lines to out and closes it at EOF. A blocked read
// outlives Run until the reader returns; nothing is sent after ctx ends.
func (r *REPL) pump(ctx context.Context, out chan<- inputResult) {
	defer close(out)
	for r.in.Scan() {
		select {
		case out <- inputResult{line: r.in.Text()}:
		case <-ctx.Done():
			return
		}
	}
	if err := r.in.Err(); err != nil {
		select {
		case out <- inputResult{err: err}:
		case <-ctx.Done():
		}
	}
}

func (r *REPL) prompt() {
	if r.opts.Interactive {
		fmt.Fprint(r.out, "> ")
	}
}

func (r *REPL) handle(ctx context.Context, line string) error {
	switch strings.TrimSpace(line) {
	case ":quit", ":q", "exit", "quit":
		if r.opts.Interactive {
			fmt.Fprintln(r.out, "Bye!")
		}
		return errQuit
	case ":help":
		return r.markdown(helpText)
	case ":history":
		return r.markdown(r.History.Markdown())
	case ":clear":
		r.History.Clear()
		fmt.Fprintln(r.out, "history cleared")
		return nil
	case ":clear-cache":
		purger, ok := r.calc.(cachePurger)
		if !ok {
			fmt.Fprintln(r.out, "no result cache")
			return nil
		}
		if err := purger.PurgeCache(ctx); err != nil {
			if errors.Is(err, domain.ErrNoCache) {
				fmt.Fprintln(r.out, "no result cache")
			} else {
				fmt.Fprintln(r.out, "error: "+err.Error())
			}
			return nil
		}
		fmt.Fprintln(r.out, "result cache cleared")
		return nil
	}

	res := r.calc.Calculate(ctx, Unescape(line))
	r.History.Record(res)
	r.print(res)
	return nil
}

func (r *REPL) print(res domain.Result) {
	var line string
	if res.Success {
		line = fmt.Sprintf("= %d", res.Value())
	} else {
		line = "error: " + res.Error
	}

	if r.opts.Interactive {
		if res.Success {
			line = tui.Success(line)
		} else {
			line = tui.Failure(line)
		}
	}
	fmt.Fprintln(r.out, line)
}

func (r *REPL) markdown(md string) error {
	rendered, err := r.opts.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	fmt.Fprint(r.out, rendered)
	return nil
}

const helpText = `Commands:

- ":history" shows the last 10 calculations
- ":clear" forgets them
- ":clear-cache" empties the result cache
- ":quit" leaves

Type "\n" to insert a newline, e.g. "//;\n1;2;3".
`
