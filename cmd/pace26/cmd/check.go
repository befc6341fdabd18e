package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/manpen/pace26io/bintree"
	"github.com/manpen/pace26io/pace"
)

var longCheckCmdDescription = `Check reads an instance and reports everything a strict reader might
trip over. Format errors end the check immediately and make it fail.
Anomalies that a reader tolerates are logged as warnings:

  * lines with leading or trailing whitespace
  * unrecognized lines
  * a header announcing a different number of trees than present
  * trees whose leaves are not exactly 1, ..., n for n leaves
  * an inconsistent tree decomposition
`

var exampleForCheckCmd = `
  pace26 check instance.nw
  pace26 check --strict instance.nw.zst
`

func NewCheckCmd(opts *rootOpts) *cobra.Command {
	var strict bool

	checkCmd := &cobra.Command{
		Use:     "check [file]",
		Short:   "Validate an instance and warn about anomalies",
		Long:    longCheckCmdDescription,
		Args:    cobra.MaximumNArgs(1),
		Example: exampleForCheckCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputArg(args)
			in, err := openInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			v := &checkVisitor{log: opts.log, tracker: pace.NewTracker()}
			v.tracker.AllowWhitespace = opts.allowWhitespace()
			reader := pace.NewReader(v)
			reader.Log = opts.log
			if err := reader.Read(in); err != nil {
				return errors.Wrapf(err, "failed to read instance %s", displayName(path))
			}
			if err := v.finish(); err != nil {
				return errors.Wrapf(err, "invalid instance %s", displayName(path))
			}

			if strict && v.warnings > 0 {
				return errors.Errorf("%d warnings in instance %s", v.warnings, displayName(path))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d trees with %d leaves, %d warnings\n",
				v.tracker.Trees(), v.tracker.NumLeaves(), v.warnings)
			return nil
		},
	}
	checkCmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return checkCmd
}

// checkVisitor validates an instance line by line. The format rules are
// enforced by a pace.Tracker, exactly as when reading an instance; hard
// errors are collected in err and stop the reader. Anomalies are logged.
type checkVisitor struct {
	pace.BaseVisitor

	log      logrus.FieldLogger
	tracker  *pace.Tracker
	warnings int
	err      error
}

func (v *checkVisitor) warn(lineno int, format string, args ...interface{}) {
	v.warnings++
	v.log.WithField("line", lineno+1).Warnf(format, args...)
}

func (v *checkVisitor) fail(err error) pace.Action {
	v.err = err
	return pace.Terminate
}

func (v *checkVisitor) VisitHeader(lineno, numTrees, numLeaves int) pace.Action {
	if err := v.tracker.Header(lineno, numTrees, numLeaves); err != nil {
		return v.fail(err)
	}
	return pace.Continue
}

func (v *checkVisitor) VisitTree(lineno int, line string) pace.Action {
	tree, err := pace.ParseTree[*bintree.BinTree](v.tracker, bintree.BinTreeBuilder{}, lineno, line)
	if err != nil {
		return v.fail(err)
	}
	v.checkLeaves(lineno, bintree.Leaves(tree))
	return pace.Continue
}

// checkLeaves warns unless labels is a permutation of 1, ..., numLeaves.
func (v *checkVisitor) checkLeaves(lineno int, labels []bintree.Label) {
	numLeaves := v.tracker.NumLeaves()
	seen := make(map[bintree.Label]bool, len(labels))
	for _, label := range labels {
		switch {
		case label == 0 || int64(label) > int64(numLeaves):
			v.warn(lineno, "leaf %d out of range 1..%d", label, numLeaves)
		case seen[label]:
			v.warn(lineno, "leaf %d appears more than once", label)
		default:
			seen[label] = true
		}
	}
	if len(labels) != numLeaves {
		v.warn(lineno, "tree has %d leaves, header announces %d", len(labels), numLeaves)
	}
}

func (v *checkVisitor) VisitLineWithExtraWhitespace(lineno int, line string) pace.Action {
	v.warn(lineno, "leading or trailing whitespace")
	return pace.Continue
}

func (v *checkVisitor) VisitUnrecognizedHashLine(lineno int, line string) pace.Action {
	v.warn(lineno, "unrecognized line starting with '#': %q", line)
	return pace.Continue
}

func (v *checkVisitor) VisitUnrecognizedLine(lineno int, line string) pace.Action {
	v.warn(lineno, "unrecognized line: %q", line)
	return pace.Continue
}

func (v *checkVisitor) VisitParamTreeDecomposition(lineno int, td *pace.TreeDecomposition) pace.Action {
	if err := v.tracker.TreeDecomposition(lineno); err != nil {
		return v.fail(err)
	}

	if n := len(td.Bags); n > 0 && len(td.Edges) != n-1 {
		v.warn(lineno, "tree decomposition has %d bags but %d edges", n, len(td.Edges))
	}
	for i, bag := range td.Bags {
		if uint64(len(bag)) > uint64(td.Treewidth)+1 {
			v.warn(lineno, "bag %d has %d elements, treewidth %d allows %d",
				i+1, len(bag), td.Treewidth, uint64(td.Treewidth)+1)
		}
	}
	for i, edge := range td.Edges {
		for _, end := range edge {
			if end == 0 || int(end) > len(td.Bags) {
				v.warn(lineno, "edge %d refers to missing bag %d", i+1, end)
			}
		}
	}
	return pace.Continue
}

// finish reports errors found while reading and warns about what can only
// be judged at the end.
func (v *checkVisitor) finish() error {
	if v.err != nil {
		return v.err
	}
	if !v.tracker.HasHeader() {
		v.warnings++
		v.log.Warn("no header found")
		return nil
	}
	if t := v.tracker; t.Trees() != t.NumTrees() {
		v.warn(t.HeaderLine(), "header announces %d trees, found %d", t.NumTrees(), t.Trees())
	}
	return nil
}
