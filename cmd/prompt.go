package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// prompter drives the interactive editing sessions. Reader and writer
// are injectable for tests.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	closed bool // input exhausted, sessions must stop asking
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
}

// ask prints the prompt and returns the trimmed reply. A closed input
// reads as "" and marks the prompter closed.
func (p *prompter) ask(prompt string) string {
	fmt.Fprintf(p.out, "%s >> ", prompt)
	if !p.in.Scan() {
		p.closed = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// askDefault asks, substituting def for an empty reply.
func (p *prompter) askDefault(prompt, def string) string {
	reply := p.ask(fmt.Sprintf("%s, default (%s)", prompt, def))
	if reply == "" {
		return def
	}
	return reply
}

func (p *prompter) confirm(prompt string) bool {
	return p.ask(prompt+" (y/n)") == "y"
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
