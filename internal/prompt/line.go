package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gwa/cli/internal/project"
)

// LinePrompter reads one answer per line. It is used when stdin is not a
// terminal, for example when answers are piped in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and writing
// questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter. Running out of input before an answer is an
// error; a final line without a newline still counts as an answer.
func (l *LinePrompter) Ask(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(l.out, "%s%s: ", p.Title, hint(p))

	line, err := l.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", fmt.Errorf("no answer for %s: %w", p.Field, io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("reading answer for %s: %w", p.Field, err)
	}
	return strings.TrimSpace(line), nil
}

// Reject implements Prompter.
func (l *LinePrompter) Reject(p Prompt, err error) {
	fmt.Fprintf(l.out, "  %v\n", err)
}

func hint(p Prompt) string {
	switch {
	case p.Kind == project.KindBool:
		if b, err := project.ParseBool(p.Default); err == nil && !b {
			return " [y/N]"
		}
		return " [Y/n]"
	case p.Default == "":
		return ""
	case p.Kind == project.KindSecret:
		return " [hidden]"
	default:
		return " [" + p.Default + "]"
	}
}
