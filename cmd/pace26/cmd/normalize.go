package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/manpen/pace26io/bintree"
	"github.com/manpen/pace26io/pace"
)

var longNormalizeCmdDescription = `Normalize rewrites an instance such that at every inner node the subtree
containing the smaller leaf label comes first. Trees that only differ in the
order of children become textually identical.

The output consists of the header, the tree decomposition (if any) and the
trees. Comments, stride and approximation lines are dropped.
`

var exampleForNormalizeCmd = `
  pace26 normalize instance.nw
  pace26 normalize -o normalized.nw.gz instance.nw
`

func NewNormalizeCmd(opts *rootOpts) *cobra.Command {
	var output string

	normalizeCmd := &cobra.Command{
		Use:     "normalize [file]",
		Short:   "Sort the children of every tree",
		Long:    longNormalizeCmdDescription,
		Args:    cobra.MaximumNArgs(1),
		Example: exampleForNormalizeCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := opts.readInstance(cmd, inputArg(args))
			if err != nil {
				return err
			}
			normalized, err := normalizeInstance(inst)
			if err != nil {
				return err
			}

			out, err := createOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := pace.WriteInstance(out, normalized); err != nil {
				out.Close()
				return errors.Wrap(err, "failed to write instance")
			}
			if err := out.Close(); err != nil {
				return errors.Wrap(err, "failed to write instance")
			}
			opts.log.Debugf("normalized %d trees", len(normalized.Trees))
			return nil
		},
	}
	normalizeCmd.Flags().StringVarP(&output, "output", "o", stdioName,
		"write to this file instead of stdout, compressed if it ends in .gz or .zst")
	return normalizeCmd
}

// normalizeInstance returns a copy of inst with every tree normalized. Node
// indices are reassigned so that the i-th tree again starts at RootIdx(i).
func normalizeInstance[T bintree.Node[T]](inst *pace.Instance[T]) (*pace.Instance[*bintree.IndexedBinTree], error) {
	normalized := &pace.Instance[*bintree.IndexedBinTree]{
		NumTrees:          len(inst.Trees),
		NumLeaves:         inst.NumLeaves,
		Trees:             make([]*bintree.IndexedBinTree, 0, len(inst.Trees)),
		TreeDecomposition: inst.TreeDecomposition,
	}
	for i, tree := range inst.Trees {
		root, ok := pace.RootIdx(i, inst.NumLeaves)
		if !ok {
			return nil, errors.Errorf("node indices of tree %d exceed the index range", i+1)
		}
		normalized.Trees = append(normalized.Trees,
			bintree.Normalize[T, *bintree.IndexedBinTree](bintree.IndexedBinTreeBuilder{}, tree, root))
	}
	return normalized, nil
}
