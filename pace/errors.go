package pace

import "fmt"

// ReaderErrorKind classifies a ReaderError.
type ReaderErrorKind int

const (
	InvalidHeaderLine ReaderErrorKind = iota
	InvalidStrideLine
	InvalidApproxLine
	InvalidParameterLine
	UnknownParameter
	InvalidJSON
	MultipleHeaders
	IO
)

// ReaderError is returned by Reader.Read. Lineno is the 0-based line number
// of the offending line. For MultipleHeaders, Lineno is the first header and
// Lineno2 the second one. Key is set for UnknownParameter; Err for
// InvalidJSON and IO.
type ReaderError struct {
	Kind    ReaderErrorKind
	Lineno  int
	Lineno2 int
	Key     string
	Err     error
}

func (e *ReaderError) Error() string {
	line := e.Lineno + 1
	switch e.Kind {
	case InvalidHeaderLine:
		return fmt.Sprintf("identified line %d as header, expected "+
			"'#p {numtrees} {numleaves}'", line)
	case InvalidStrideLine:
		return fmt.Sprintf("identified line %d as stride line, expected "+
			"'#s {key} {value}'", line)
	case InvalidApproxLine:
		return fmt.Sprintf("identified line %d as approx line, expected "+
			"'#a {a} {b}' with non-negative a", line)
	case InvalidParameterLine:
		return fmt.Sprintf("identified line %d as parameter line, expected "+
			"'#x {key} {value}'", line)
	case UnknownParameter:
		return fmt.Sprintf("unknown parameter in line %d: '%s'", line, e.Key)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in line %d: %s", line, e.Err)
	case MultipleHeaders:
		return fmt.Sprintf("found multiple headers, lines %d and %d",
			line, e.Lineno2+1)
	}
	return fmt.Sprintf("error reading line %d: %s", line, e.Err)
}

func (e *ReaderError) Unwrap() error {
	return e.Err
}

// InstanceErrorKind classifies an InstanceError.
type InstanceErrorKind int

const (
	// NoHeader is a tree line before the header.
	NoHeader InstanceErrorKind = iota
	// NoLeaves is a header declaring zero leaves.
	NoLeaves
	// Newick is a tree line that failed to parse; Err is the
	// *newick.ParserError.
	Newick
	// DuplicateTreeDecomposition is a second treedecomp parameter; Lineno2
	// is the line of the first one.
	DuplicateTreeDecomposition
	// TooManyNodes is a tree with more inner nodes than the header allows,
	// or an instance whose inner node indices do not fit into a NodeIdx.
	TooManyNodes
)

// InstanceError is returned by ReadInstance for violations that the line
// reader alone cannot detect. Lineno is 0-based.
type InstanceError struct {
	Kind    InstanceErrorKind
	Lineno  int
	Lineno2 int
	Err     error
}

func (e *InstanceError) Error() string {
	line := e.Lineno + 1
	switch e.Kind {
	case NoHeader:
		return fmt.Sprintf("no header before first tree in line %d", line)
	case NoLeaves:
		return fmt.Sprintf("header in line %d indicates no leaves", line)
	case Newick:
		return fmt.Sprintf("invalid tree in line %d: %s", line, e.Err)
	case DuplicateTreeDecomposition:
		return fmt.Sprintf("found multiple tree decompositions, lines %d "+
			"and %d", e.Lineno2+1, line)
	}
	return fmt.Sprintf("too many nodes: tree in line %d exceeds its node "+
		"index range", line)
}

func (e *InstanceError) Unwrap() error {
	return e.Err
}
