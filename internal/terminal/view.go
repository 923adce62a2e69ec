// Package terminal runs controller actions over plain text streams.
package terminal

import (
	"bufio"
	"fmt"
	"io"

	"flashcards/internal/domain"
)

// View prompts on out and reads one line per prompt from in.
// End of input cancels the prompt.
type View struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewView creates a terminal view
func NewView(in io.Reader, out io.Writer) *View {
	return &View{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (v *View) Prompt(message string, done func(input string, ok bool)) {
	fmt.Fprintf(v.out, "%s ", message)
	if !v.in.Scan() {
		fmt.Fprintln(v.out)
		done("", false)
		return
	}
	done(v.in.Text(), true)
}

func (v *View) Inform(title, message string, done func()) {
	fmt.Fprintf(v.out, "[%s] %s\n", title, message)
	done()
}

func (v *View) Warn(title, message string, done func()) {
	fmt.Fprintf(v.out, "[%s] ! %s\n", title, message)
	done()
}

func (v *View) ShowEntries(text string) {
	fmt.Fprintln(v.out, text)
}

func (v *View) ShowLastAdded(entry domain.Entry) {}
