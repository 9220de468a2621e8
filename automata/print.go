package automata

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/shadowCow/lexkit/lexerr"
)

// Print renders t in the transition-table text format: one line per state,
// `+`/`-` then state id then space-separated transitions (`E` for none),
// terminated by a newline.
func Print(t *Table) string {
	var b strings.Builder
	for id, row := range t.Rows {
		if row.Accepting {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(id))
		for _, dest := range row.Transitions {
			b.WriteByte(' ')
			if dest == noTransition {
				b.WriteByte('E')
			} else {
				b.WriteString(strconv.Itoa(dest))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseTable parses the transition-table text format back into rows, given
// an already-loaded Alphabet. Every row's transition count must equal the
// alphabet size; the first field must be `+` or `-`; remaining fields must
// be a non-negative integer or `E`.
func ParseTable(text string, alphabet Alphabet) (*Table, error) {
	var rows []StateRow

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
		}

		var accepting bool
		switch fields[0] {
		case "+":
			accepting = true
		case "-":
			accepting = false
		default:
			return nil, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
		}

		if _, err := strconv.ParseUint(fields[1], 10, 64); err != nil {
			return nil, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
		}

		transitions := make([]int, 0, len(fields)-2)
		for _, f := range fields[2:] {
			if f == "E" {
				transitions = append(transitions, noTransition)
				continue
			}
			dest, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return nil, &lexerr.ConfigError{Err: lexerr.ErrMalformedRow}
			}
			transitions = append(transitions, int(dest))
		}

		rows = append(rows, StateRow{Accepting: accepting, Transitions: transitions})
	}
	if err := scanner.Err(); err != nil {
		return nil, &lexerr.IOError{Op: "read", Err: err}
	}

	return NewTable(rows, alphabet)
}
