package pace

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Action is returned by every Visitor method. Terminate stops the Reader
// without an error.
type Action int

const (
	Continue Action = iota
	Terminate
)

// Visitor receives the classified lines of an instance. Line numbers are
// 0-based. Embed BaseVisitor to only implement the methods you care about;
// a typical solver implements VisitTree and possibly VisitHeader.
type Visitor interface {
	VisitHeader(lineno, numTrees, numLeaves int) Action
	VisitApproxLine(lineno int, paramA float64, paramB int) Action
	VisitTree(lineno int, line string) Action
	VisitLineWithExtraWhitespace(lineno int, line string) Action
	VisitUnrecognizedHashLine(lineno int, line string) Action
	VisitUnrecognizedLine(lineno int, line string) Action
	VisitStrideLine(lineno int, line, key, value string) Action
}

// TreeDecompositionVisitor is implemented by visitors that want the
// `#x treedecomp` parameter. The JSON payload is only decoded for such
// visitors.
type TreeDecompositionVisitor interface {
	VisitParamTreeDecomposition(lineno int, td *TreeDecomposition) Action
}

// BaseVisitor implements every Visitor method by returning Continue.
type BaseVisitor struct{}

func (BaseVisitor) VisitHeader(lineno, numTrees, numLeaves int) Action {
	return Continue
}

func (BaseVisitor) VisitApproxLine(lineno int, paramA float64, paramB int) Action {
	return Continue
}

func (BaseVisitor) VisitTree(lineno int, line string) Action {
	return Continue
}

func (BaseVisitor) VisitLineWithExtraWhitespace(lineno int, line string) Action {
	return Continue
}

func (BaseVisitor) VisitUnrecognizedHashLine(lineno int, line string) Action {
	return Continue
}

func (BaseVisitor) VisitUnrecognizedLine(lineno int, line string) Action {
	return Continue
}

func (BaseVisitor) VisitStrideLine(lineno int, line, key, value string) Action {
	return Continue
}

// paramTreeDecomp is the only key recognized in `#x` lines.
const paramTreeDecomp = "treedecomp"

// Reader reads an instance in the PACE 2026 format line by line and hands
// every recognized element to a Visitor. It does not parse trees itself.
//
// Lines are classified as follows, after trimming surrounding whitespace:
// empty lines are skipped, "# " starts a comment, "#p" the header, "#s" a
// stride line, "#a" an approximation line and "#x" a parameter line. Other
// lines starting with '#' are unrecognized hash lines. Lines ending with ';'
// are trees; everything else is unrecognized.
//
// The first malformed line stops reading with a *ReaderError.
type Reader struct {
	// If set, every classified line is logged at debug level.
	Log logrus.FieldLogger

	visitor Visitor
}

// NewReader returns a reader dispatching to v.
func NewReader(v Visitor) *Reader {
	return &Reader{visitor: v}
}

// Read consumes the instance from input. It returns nil if the input is
// exhausted or a visitor method returned Terminate.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read(input io.Reader) error {
	buf := bufio.NewReader(input)
	headerLine := -1
	for lineno := 0; ; lineno++ {
		line, err := buf.ReadString('\n')
		if err == io.EOF && len(line) == 0 {
			return nil
		}
		if err != nil && err != io.EOF {
			return &ReaderError{Kind: IO, Lineno: lineno, Err: err}
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		action, err := r.readLine(lineno, line, &headerLine)
		if err != nil {
			return err
		}
		if action == Terminate {
			r.debugf(lineno, "visitor terminated reading")
			return nil
		}
	}
}

// readLine classifies a single line. headerLine is the line of the header,
// or -1 if none has been seen yet.
func (r *Reader) readLine(lineno int, line string, headerLine *int) (Action, error) {
	content := strings.TrimSpace(line)
	if len(content) != len(line) {
		r.debugf(lineno, "extra whitespace")
		if r.visitor.VisitLineWithExtraWhitespace(lineno, line) == Terminate {
			return Terminate, nil
		}
	}

	switch {
	case len(content) == 0:
		return Continue, nil
	case strings.HasPrefix(content, "# "):
		r.debugf(lineno, "comment")
		return Continue, nil
	case strings.HasPrefix(content, "#p"):
		if *headerLine >= 0 {
			return Continue, &ReaderError{
				Kind:    MultipleHeaders,
				Lineno:  *headerLine,
				Lineno2: lineno,
			}
		}
		*headerLine = lineno

		numTrees, numLeaves, ok := parseHeader(content)
		if !ok {
			return Continue, &ReaderError{Kind: InvalidHeaderLine, Lineno: lineno}
		}
		r.debugf(lineno, "header: %d trees, %d leaves", numTrees, numLeaves)
		return r.visitor.VisitHeader(lineno, numTrees, numLeaves), nil
	case strings.HasPrefix(content, "#s"):
		key, value, ok := splitKeyValue(content)
		if !ok {
			return Continue, &ReaderError{Kind: InvalidStrideLine, Lineno: lineno}
		}
		r.debugf(lineno, "stride line: %s", key)
		return r.visitor.VisitStrideLine(lineno, content, key, value), nil
	case strings.HasPrefix(content, "#a"):
		a, b, ok := parseApprox(content)
		if !ok {
			return Continue, &ReaderError{Kind: InvalidApproxLine, Lineno: lineno}
		}
		r.debugf(lineno, "approx line: %g %d", a, b)
		return r.visitor.VisitApproxLine(lineno, a, b), nil
	case strings.HasPrefix(content, "#x"):
		return r.readParameter(lineno, content)
	case strings.HasPrefix(content, "#"):
		r.debugf(lineno, "unrecognized hash line")
		return r.visitor.VisitUnrecognizedHashLine(lineno, content), nil
	case strings.HasSuffix(content, ";"):
		r.debugf(lineno, "tree")
		return r.visitor.VisitTree(lineno, content), nil
	}
	r.debugf(lineno, "unrecognized line")
	return r.visitor.VisitUnrecognizedLine(lineno, content), nil
}

func (r *Reader) readParameter(lineno int, content string) (Action, error) {
	key, value, ok := splitKeyValue(content)
	if !ok {
		return Continue, &ReaderError{Kind: InvalidParameterLine, Lineno: lineno}
	}
	if key != paramTreeDecomp {
		return Continue, &ReaderError{
			Kind:   UnknownParameter,
			Lineno: lineno,
			Key:    key,
		}
	}

	tdv, ok := r.visitor.(TreeDecompositionVisitor)
	if !ok {
		r.debugf(lineno, "skipping parameter %s", key)
		return Continue, nil
	}
	td, err := ParseTreeDecomposition([]byte(value))
	if err != nil {
		return Continue, &ReaderError{Kind: InvalidJSON, Lineno: lineno, Err: err}
	}
	r.debugf(lineno, "tree decomposition: treewidth %d, %d bags, %d edges",
		td.Treewidth, len(td.Bags), len(td.Edges))
	return tdv.VisitParamTreeDecomposition(lineno, td), nil
}

func (r *Reader) debugf(lineno int, format string, v ...interface{}) {
	if r.Log == nil {
		return
	}
	r.Log.WithField("line", lineno+1).Debugf(format, v...)
}

// parseHeader parses "#p {numtrees} {numleaves}". Fields are separated by
// single spaces; anything after the third field is ignored.
func parseHeader(line string) (numTrees, numLeaves int, ok bool) {
	parts := strings.Split(line, " ")
	if len(parts) < 3 || parts[0] != "#p" {
		return 0, 0, false
	}
	numTrees, ok = parseCount(parts[1])
	if !ok {
		return 0, 0, false
	}
	numLeaves, ok = parseCount(parts[2])
	if !ok {
		return 0, 0, false
	}
	return numTrees, numLeaves, true
}

// parseApprox parses "#a {a} {b}" where a is a non-negative float and b an
// unsigned integer.
func parseApprox(line string) (a float64, b int, ok bool) {
	parts := strings.Split(line, " ")
	if len(parts) < 3 || parts[0] != "#a" {
		return 0, 0, false
	}
	a, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || math.IsNaN(a) || a < 0 {
		return 0, 0, false
	}
	b, ok = parseCount(parts[2])
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

func parseCount(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// splitKeyValue expects a line "#X {key} {value}" and returns the trimmed
// key and value. The line is split at the first space after the two
// character prefix and the character following it.
func splitKeyValue(line string) (key, value string, ok bool) {
	if len(line) < 3 {
		return "", "", false
	}
	i := strings.IndexByte(line[3:], ' ')
	if i < 0 {
		return "", "", false
	}
	split := i + 3
	return strings.TrimSpace(line[2:split]), strings.TrimSpace(line[split+1:]), true
}
