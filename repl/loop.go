package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsearch/session"
)

// errEOF signals that input ended while a command was reading arguments.
var errEOF = errors.New("repl: end of input")

const rule = "---------------------------------------------------------------"

// Option configures a Loop.
type Option func(*Loop)

// WithInteractive enables the banner and prompts.
func WithInteractive(on bool) Option {
	return func(l *Loop) { l.interactive = on }
}

// WithPrompt sets the command prompt shown in interactive mode.
func WithPrompt(p string) Option {
	return func(l *Loop) { l.prompt = p }
}

// WithStyles sets the output styles.
func WithStyles(s Styles) Option {
	return func(l *Loop) { l.styles = s }
}

// WithLogger sets the logger used for command-level records.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Loop) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// Loop reads commands from an input stream and drives a session.
type Loop struct {
	in          *bufio.Scanner
	out         io.Writer
	sess        *session.Session
	interactive bool
	prompt      string
	styles      Styles
	logger      *slog.Logger
}

// New returns a Loop reading from in and writing to out.
func New(in io.Reader, out io.Writer, sess *session.Session, opts ...Option) *Loop {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	l := &Loop{
		in:     sc,
		out:    out,
		sess:   sess,
		prompt: "Enter a command: ",
		styles: PlainStyles(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Run processes commands until q, end of input, or ctx is done.
// Command errors are printed, never returned; Run only returns read
// failures and ctx errors.
func (l *Loop) Run(ctx context.Context) error {
	if l.interactive {
		l.menu()
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.interactive {
			l.print("\n" + l.styles.paint(l.styles.Prompt, l.prompt))
		}
		tok, err := l.next()
		if err != nil {
			return l.endOfInput(err)
		}

		quit, err := l.dispatch(ctx, tok)
		if err != nil {
			return l.endOfInput(err)
		}
		if quit {
			return nil
		}
	}
}

// dispatch runs one command. It reports quit for q.
func (l *Loop) dispatch(ctx context.Context, tok string) (bool, error) {
	cmd, ok := lookup(tok)
	if !ok {
		l.logger.Debug("unknown command", slog.String("token", tok))
		l.failf("Invalid command. Please try again.\n")
		return false, nil
	}
	l.logger.Debug("command", slog.String("command", cmd))

	switch cmd {
	case cmdInit:
		l.initGraph()
	case cmdVertex:
		l.printf("The vertices are automatically managed up to %d.\n", l.sess.Capacity())
	case cmdEdge:
		return false, l.addEdge()
	case cmdDFS:
		return false, l.traverse(ctx, "DFS", l.sess.DFS)
	case cmdBFS:
		return false, l.traverse(ctx, "BFS", l.sess.BFS)
	case cmdPrint:
		l.printGraph()
	case cmdHelp:
		l.menu()
	case cmdQuit:
		l.printf("Exiting program.\n")
		return true, nil
	}

	return false, nil
}

func (l *Loop) initGraph() {
	g, err := l.sess.Init()
	if err != nil {
		l.failf("Graph initialization failed: %v\n", err)
		return
	}
	l.print(l.styles.paint(l.styles.Success, fmt.Sprintf("Graph initialized to %d vertices.", g.Capacity())) + "\n")
}

func (l *Loop) addEdge() error {
	if l.interactive {
		l.print("Enter edge (format: v1 v2): ")
	}
	u, err := l.nextInt()
	if err != nil {
		return err
	}
	v, err := l.nextInt()
	if err != nil {
		return err
	}
	if err = l.sess.AddEdge(u, v); err != nil {
		l.failf("Invalid vertex or graph not initialized.\n")
		return nil
	}
	l.print(l.styles.paint(l.styles.Success, fmt.Sprintf("Edge added between vertex %d and vertex %d.", u, v)) + "\n")

	return nil
}

// traversal is the shape of session.Session.DFS and BFS.
type traversal func(ctx context.Context, start int, emit func(v int)) ([]int, error)

func (l *Loop) traverse(ctx context.Context, name string, run traversal) error {
	g := l.sess.Graph()
	if g == nil {
		l.failf("Graph not initialized.\n")
		return nil
	}
	if l.interactive {
		l.printf("Enter starting vertex for %s: ", name)
	}
	start, err := l.nextInt()
	if err != nil {
		return err
	}
	if !g.HasVertex(start) {
		l.failf("Invalid starting vertex.\n")
		return nil
	}

	l.printf("%s traversal starting from vertex %d: ", name, start)
	sep := ""
	_, err = run(ctx, start, func(v int) {
		l.print(sep + l.styles.paint(l.styles.Vertex, strconv.Itoa(v)))
		sep = " "
	})
	l.print("\n")
	if err != nil {
		l.failf("%s traversal stopped: %v\n", name, err)
	}

	return nil
}

func (l *Loop) printGraph() {
	if err := l.sess.Print(l.out); err != nil {
		l.failf("Graph not initialized.\n")
	}
}

func (l *Loop) menu() {
	title := l.styles.paint(l.styles.Title, "Graph Searches")
	r := l.styles.paint(l.styles.Rule, rule)
	l.print(r + "\n" + title + "\n" + r + "\n" +
		"Initialize Graph = z\n" +
		"Insert Vertex = v Insert Edge = e\n" +
		"Depth First Search = d Breadth First Search = b\n" +
		"Print Graph = p Quit = q\n" +
		r + "\n")
}

// next returns the next token, io.EOF at end of input, or the read error.
func (l *Loop) next() (string, error) {
	if l.in.Scan() {
		return l.in.Text(), nil
	}
	if err := l.in.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// nextInt reads an integer argument. A malformed token is reported and
// replaced by -1, which every consumer rejects as out of range.
func (l *Loop) nextInt() (int, error) {
	tok, err := l.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errEOF
		}
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		l.logger.Debug("malformed number", slog.String("token", tok))
		l.failf("Invalid number %q.\n", tok)
		return -1, nil
	}

	return n, nil
}

// endOfInput turns EOF conditions into a clean stop.
func (l *Loop) endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, errEOF) {
		l.logger.Debug("input closed")
		return nil
	}

	return err
}

func (l *Loop) print(s string) {
	_, _ = io.WriteString(l.out, s)
}

func (l *Loop) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}

// failf prints an error line, styled when enabled.
func (l *Loop) failf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	body := strings.TrimSuffix(msg, "\n")
	l.print(l.styles.paint(l.styles.Error, body) + msg[len(body):])
}
