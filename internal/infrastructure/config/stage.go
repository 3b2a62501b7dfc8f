package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMapParse is wrapped by every level parse failure
var ErrMapParse = errors.New("map parse error")

// ParseError reports where a level file stopped making sense
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "level: " + msg
}

// Unwrap exposes both ErrMapParse and the underlying cause
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMapParse}
	}
	return []error{ErrMapParse, e.Err}
}

// LevelFile is a level as written on disk, before tile ids are resolved.
// Data holds the raw cell values: 0 means no tile, v > 0 is tile id v-1.
type LevelFile struct {
	Name    string
	Width   int
	Height  int
	Data    [][]int
	Objects []ObjectConfig
}

// ObjectConfig is one object-layer entry; X and Y are in tiles from the top-left
type ObjectConfig struct {
	Type string
	X, Y float64
}

// lineReader hands out trimmed lines with their 1-based numbers
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (r *lineReader) next() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), true
}

func (r *lineReader) fail(format string, args ...any) *ParseError {
	return &ParseError{Line: r.line, Reason: fmt.Sprintf(format, args...)}
}

// ParseLevel reads the Flare text map format: a [header] with width and height,
// [layer] sections with a data= grid, and [ObjectsLayer] type/location pairs.
// Unknown sections and keys are skipped.
func ParseLevel(src io.Reader) (*LevelFile, error) {
	r := &lineReader{scanner: bufio.NewScanner(src)}
	r.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lf := &LevelFile{}
	headerSeen := false

	for {
		line, ok := r.next()
		if !ok {
			break
		}
		switch line {
		case "[header]":
			if headerSeen {
				return nil, r.fail("duplicate [header]")
			}
			if err := parseHeader(r, lf); err != nil {
				return nil, err
			}
			headerSeen = true
		case "[layer]":
			if !headerSeen {
				return nil, r.fail("[layer] before [header]")
			}
			if err := parseLayer(r, lf); err != nil {
				return nil, err
			}
		case "[ObjectsLayer]":
			if err := parseObjects(r, lf); err != nil {
				return nil, err
			}
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, &ParseError{Line: r.line, Reason: "unreadable source", Err: err}
	}
	if !headerSeen {
		return nil, &ParseError{Reason: "missing [header]"}
	}
	return lf, nil
}

func splitKeyValue(line string) (key, value string) {
	key, value, _ = strings.Cut(line, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

func parseHeader(r *lineReader, lf *LevelFile) error {
	lf.Width, lf.Height = 0, 0
	for {
		line, ok := r.next()
		if !ok || line == "" {
			break
		}
		key, value := splitKeyValue(line)
		switch key {
		case "width", "height":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return r.fail("malformed %s %q", key, value)
			}
			if key == "width" {
				lf.Width = n
			} else {
				lf.Height = n
			}
		}
	}
	if lf.Width == 0 {
		return r.fail("header is missing width")
	}
	if lf.Height == 0 {
		return r.fail("header is missing height")
	}
	return nil
}

func parseLayer(r *lineReader, lf *LevelFile) error {
	for {
		line, ok := r.next()
		if !ok || line == "" {
			return nil
		}
		if key, _ := splitKeyValue(line); key != "data" {
			continue
		}

		data := make([][]int, lf.Height)
		for y := 0; y < lf.Height; y++ {
			row, ok := r.next()
			if !ok || row == "" {
				return r.fail("data has %d rows, want %d", y, lf.Height)
			}
			cells, err := parseRow(row)
			if err != nil {
				return r.fail("%v", err)
			}
			if len(cells) != lf.Width {
				return r.fail("row %d has %d columns, want %d", y, len(cells), lf.Width)
			}
			data[y] = cells
		}
		lf.Data = data
	}
}

// parseRow splits a comma-separated row; a single trailing comma is allowed
func parseRow(row string) ([]int, error) {
	row = strings.TrimSuffix(row, ",")
	fields := strings.Split(row, ",")
	cells := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid tile value %q", f)
		}
		cells[i] = v
	}
	return cells, nil
}

func parseObjects(r *lineReader, lf *LevelFile) error {
	var objType string
	for {
		line, ok := r.next()
		if !ok || line == "" {
			return nil
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value := splitKeyValue(line)
		switch key {
		case "type":
			objType = value
		case "location":
			parts := strings.Split(value, ",")
			if len(parts) < 2 {
				return r.fail("malformed location %q", value)
			}
			x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
			y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errX != nil || errY != nil {
				return r.fail("malformed location %q", value)
			}
			lf.Objects = append(lf.Objects, ObjectConfig{Type: objType, X: float64(x), Y: float64(y)})
		}
	}
}
