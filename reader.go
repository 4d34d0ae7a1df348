package scatter3d

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

type readOptions struct {
	skipMalformed bool
	logger        *log.Logger
}

type ReadOption func(*readOptions)

// SkipMalformed makes the reader log and drop malformed lines instead of
// failing on the first one.
func SkipMalformed(logger *log.Logger) ReadOption {
	return func(o *readOptions) {
		o.skipMalformed = true
		o.logger = logger
	}
}

// ReadCoordinates reads "x y z" lines from r until an empty line and returns
// them after the origin. By default the first malformed line aborts the read.
func ReadCoordinates(r io.Reader, opts ...ReadOption) (*Sequence, error) {
	o := readOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	seq := NewSequence()
	br := bufio.NewReader(r)

	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		atEOF := err == io.EOF
		if err != nil && !atEOF {
			return nil, fmt.Errorf("error reading coordinates: %w", err)
		}
		if atEOF && line == "" {
			return nil, ErrUnexpectedEndOfInput
		}
		lineNo++

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" && !atEOF {
			o.logger.Printf("Terminator at line %d, %d points collected", lineNo, seq.Len())
			return seq, nil
		}

		c, err := ParseLine(line)
		if err != nil {
			var me *MalformedLineError
			if errors.As(err, &me) {
				me.Line = lineNo
			}
			if !o.skipMalformed {
				return nil, err
			}
			o.logger.Printf("Skipping %v", err)
		} else {
			seq.Append(c)
		}

		// a last line without a newline is still read, but no terminator follows
		if atEOF {
			return nil, ErrUnexpectedEndOfInput
		}
	}
}

// ParseLine converts the first three single-space separated fields of line
// into a Coordinate. Further fields are ignored.
func ParseLine(line string) (Coordinate, error) {
	fields := strings.Split(line, " ")
	if len(fields) < 3 {
		return Coordinate{}, &MalformedLineError{
			Text: line,
			Err:  fmt.Errorf("expected 3 fields, got %d", len(fields)),
		}
	}

	var xyz [3]float64
	for i := 0; i < 3; i++ {
		val, err := parseField(fields[i])
		if err != nil {
			return Coordinate{}, &MalformedLineError{
				Text: line,
				Err:  fmt.Errorf("field %d: %w", i+1, err),
			}
		}
		xyz[i] = val
	}
	return NewCoordinate(xyz[0], xyz[1], xyz[2]), nil
}

var errHexFloat = errors.New("hexadecimal notation is not accepted")

// parseField converts one decimal number. Surrounding whitespace other than
// the separator is trimmed; hex floats are refused.
func parseField(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	digits := strings.TrimLeft(tok, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("%q: %w", tok, errHexFloat)
	}
	return strconv.ParseFloat(tok, 64)
}
