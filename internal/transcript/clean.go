// Package transcript strips timestamp-range markers from whisper-style
// transcript lines such as "[00:01.000 --> 00:02.500] Hello world".
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"
)

// space is Unicode whitespace: ASCII \s plus \v, the C0 separators, NEL and
// the Z categories (NBSP, em space, ideographic space and friends).
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

// markerPattern matches [mm:ss.mmm --> mm:ss.mmm] or the hour-qualified form
// at the start of a line, plus any whitespace after the closing bracket.
var markerPattern = regexp.MustCompile(
	`^\[\d{2}:(?:\d{2}:)?\d{2}\.\d{3}` + space + `*-->` + space + `*\d{2}:(?:\d{2}:)?\d{2}\.\d{3}\]` + space + `*`,
)

var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Stats counts what Clean did.
type Stats struct {
	Lines    int
	Stripped int
}

func HasMarker(line string) bool {
	return markerPattern.MatchString(line)
}

// StripLine removes a leading timestamp marker. Lines without one come back
// untouched. The trailing \s* may swallow the line terminator, so a line that
// holds only a marker becomes empty.
func StripLine(line string) string {
	loc := markerPattern.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[loc[1]:]
}

// Clean copies r to w one line at a time, stripping markers. Line terminators
// are kept as they are. A line that is not valid UTF-8 stops the copy; lines
// before it have already been handed to w.
func Clean(r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			st.Lines++
			if !utf8.ValidString(line) {
				return st, fmt.Errorf("line %d: %w", st.Lines, ErrInvalidUTF8)
			}
			out := StripLine(line)
			if len(out) != len(line) {
				st.Stripped++
			}
			if _, werr := io.WriteString(w, out); werr != nil {
				return st, fmt.Errorf("write line %d: %w", st.Lines, werr)
			}
		}
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, fmt.Errorf("read line %d: %w", st.Lines+1, err)
		}
	}
}

// CleanFile runs Clean from inPath into outPath. The input is opened first,
// so a missing input never creates the output.
func CleanFile(inPath, outPath string) (st Stats, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return st, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return st, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(out)
	st, err = Clean(in, bw)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flush output: %w", ferr)
	}
	return st, err
}
