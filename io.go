package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// LineReader hands the game one line of input per call. It returns io.EOF
// once the input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Screen is cleared between turns.
type Screen interface {
	Clear()
}

type nopScreen struct{}

func (nopScreen) Clear() {}

type terminalScreen struct {
	out *termenv.Output
}

func newTerminalScreen(w io.Writer) *terminalScreen {
	return &terminalScreen{out: termenv.NewOutput(w)}
}

func (s *terminalScreen) Clear() {
	s.out.ClearScreen()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// headlessReader is kept for the whole session so buffered data isn't lost
// between calls.
type headlessReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newHeadlessReader(in io.Reader, out io.Writer) *headlessReader {
	return &headlessReader{in: bufio.NewReader(in), out: out}
}

func (r *headlessReader) ReadLine(prompt string) (string, error) {
	_, _ = io.WriteString(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// terminalReader edits the line in raw mode: backspace, up/down through the
// last MaxHistory entries, Ctrl-D for end of input. Bytes read past the end
// of a line stay in pending for the next call, so pasted or typed-ahead
// commands are kept.
type terminalReader struct {
	in  *os.File
	src io.Reader
	out io.Writer

	pending []byte
	afterCR bool

	history      [MaxHistory]string
	historyCount int
	fallback     *headlessReader
}

func newTerminalReader(in *os.File, out io.Writer) *terminalReader {
	return &terminalReader{in: in, src: in, out: out}
}

func (r *terminalReader) print(s string) {
	_, _ = io.WriteString(r.out, s)
}

func (r *terminalReader) remember(line string) {
	if line == "" {
		return
	}
	if r.historyCount > 0 && r.history[(r.historyCount-1)%MaxHistory] == line {
		return
	}
	r.history[r.historyCount%MaxHistory] = line
	r.historyCount++
}

func (r *terminalReader) recall(idx int) string {
	return r.history[idx%MaxHistory]
}

// oldest is the lowest history index still held in the ring.
func (r *terminalReader) oldest() int {
	if r.historyCount > MaxHistory {
		return r.historyCount - MaxHistory
	}
	return 0
}

// nextByte hands out one byte at a time from the last chunk read.
func (r *terminalReader) nextByte() (byte, error) {
	if len(r.pending) == 0 {
		buf := make([]byte, 256)
		n, err := r.src.Read(buf)
		if n == 0 {
			if err == nil {
				err = io.EOF
			}
			return 0, err
		}
		r.pending = buf[:n]
	}
	b := r.pending[0]
	r.pending = r.pending[1:]
	return b, nil
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	if r.fallback != nil {
		return r.fallback.ReadLine(prompt)
	}

	fd := int(r.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		r.fallback = newHeadlessReader(r.in, r.out)
		return r.fallback.ReadLine(prompt)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	return r.editLine(prompt)
}

// editLine runs the line editor over src. It expects the terminal to be in
// raw mode already.
func (r *terminalReader) editLine(prompt string) (string, error) {
	// Raw mode turns off output post-processing, so newlines need a carriage return.
	r.print(strings.ReplaceAll(prompt, "\n", "\r\n"))

	var lineRunes []rune
	histIdx := r.historyCount
	replace := func(next []rune) {
		for range lineRunes {
			r.print("\b \b")
		}
		lineRunes = next
		r.print(string(lineRunes))
	}

	for {
		b, err := r.nextByte()
		if err != nil {
			r.print("\r\n")
			if len(lineRunes) > 0 {
				return string(lineRunes), nil
			}
			return "", io.EOF
		}

		// A CRLF pair ends one line, not two.
		if b == '\n' && r.afterCR {
			r.afterCR = false
			continue
		}
		r.afterCR = b == '\r'

		switch {
		case b == '\r' || b == '\n':
			r.print("\r\n")
			line := string(lineRunes)
			r.remember(line)
			return line, nil

		case b == '\x04': // Ctrl-D
			r.print("\r\n")
			return "", io.EOF

		case b == '\x03': // Ctrl-C
			r.print("^C\r\n")
			return "", io.EOF

		case b == '\x7f' || b == '\x08':
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				r.print("\b \b")
			}

		case b == '\x1b':
			switch r.escapeSequence() {
			case 'A':
				if histIdx > r.oldest() {
					histIdx--
					replace([]rune(r.recall(histIdx)))
				}
			case 'B':
				if histIdx < r.historyCount {
					histIdx++
					if histIdx < r.historyCount {
						replace([]rune(r.recall(histIdx)))
					} else {
						replace(nil)
					}
				}
			}

		case b >= utf8.RuneSelf:
			seq := []byte{b}
			for !utf8.FullRune(seq) {
				next, err := r.nextByte()
				if err != nil {
					break
				}
				seq = append(seq, next)
			}
			rn, _ := utf8.DecodeRune(seq)
			if rn != utf8.RuneError {
				lineRunes = append(lineRunes, rn)
				r.print(string(rn))
			}

		case b >= ' ':
			lineRunes = append(lineRunes, rune(b))
			r.print(string(rune(b)))
		}
	}
}

// escapeSequence consumes the rest of an escape sequence and returns the
// final byte of a CSI sequence, or 0 for anything else.
func (r *terminalReader) escapeSequence() byte {
	b, err := r.nextByte()
	if err != nil || b != '[' {
		return 0
	}
	for {
		b, err = r.nextByte()
		if err != nil {
			return 0
		}
		if b >= 0x40 && b <= 0x7e {
			return b
		}
	}
}

// newLineReader picks raw-mode editing for an interactive terminal and plain
// buffered reads otherwise.
func newLineReader(in *os.File, out io.Writer, headless bool) LineReader {
	if headless || !isTerminal(in) {
		return newHeadlessReader(in, out)
	}
	return newTerminalReader(in, out)
}

func newScreen(out io.Writer, headless bool) Screen {
	if headless || !isTerminalWriter(out) {
		return nopScreen{}
	}
	return newTerminalScreen(out)
}
