package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/manpen/pace26io/bintree"
	"github.com/manpen/pace26io/pace"
)

var exampleForInspectCmd = `
  pace26 inspect instance.nw
  pace26 inspect --trees instance.nw.gz
  cat instance.nw | pace26 inspect -
`

// readInstance reads the instance named by path (see openInput) with node
// indices attached to every tree.
func (o *rootOpts) readInstance(cmd *cobra.Command, path string) (*pace.Instance[*bintree.IndexedBinTree], error) {
	in, err := openInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer in.Close()

	inst, err := pace.ReadInstanceOpts[*bintree.IndexedBinTree](
		in, bintree.IndexedBinTreeBuilder{}, pace.Options{
			Log:             o.log,
			AllowWhitespace: o.allowWhitespace(),
		})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read instance %s", displayName(path))
	}
	return inst, nil
}

func displayName(path string) string {
	if path == "" || path == stdioName {
		return "from stdin"
	}
	return path
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return stdioName
	}
	return args[0]
}

func NewInspectCmd(opts *rootOpts) *cobra.Command {
	var listTrees bool

	inspectCmd := &cobra.Command{
		Use:     "inspect [file]",
		Short:   "Print a summary of an instance",
		Args:    cobra.MaximumNArgs(1),
		Example: exampleForInspectCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := opts.readInstance(cmd, inputArg(args))
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), inst)
			if listTrees {
				fmt.Fprintln(cmd.OutOrStdout())
				printTrees(cmd.OutOrStdout(), inst)
			}
			return nil
		},
	}
	inspectCmd.Flags().BoolVar(&listTrees, "trees", false, "additionally list every tree")
	return inspectCmd
}

func printSummary(w io.Writer, inst *pace.Instance[*bintree.IndexedBinTree]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"property", "value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"trees (header)", strconv.Itoa(inst.NumTrees)})
	table.Append([]string{"trees (read)", strconv.Itoa(len(inst.Trees))})
	table.Append([]string{"leaves", strconv.Itoa(inst.NumLeaves)})

	if td := inst.TreeDecomposition; td != nil {
		table.Append([]string{"treewidth", strconv.FormatUint(uint64(td.Treewidth), 10)})
		table.Append([]string{"bags", strconv.Itoa(len(td.Bags))})
		table.Append([]string{"decomposition edges", strconv.Itoa(len(td.Edges))})
	} else {
		table.Append([]string{"tree decomposition", "none"})
	}
	table.Render()
}

func printTrees(w io.Writer, inst *pace.Instance[*bintree.IndexedBinTree]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"tree", "root", "leaves", "inner nodes", "height"})
	for i, tree := range inst.Trees {
		table.Append([]string{
			strconv.Itoa(i + 1),
			tree.NodeIdx().String(),
			strconv.Itoa(len(bintree.Leaves(tree))),
			strconv.Itoa(bintree.NumInner(tree)),
			strconv.Itoa(height(tree)),
		})
	}
	table.Render()
}

// height is the number of edges on the longest root to leaf path.
func height[T bintree.Node[T]](node T) int {
	left, right, ok := node.Children()
	if !ok {
		return 0
	}
	hl, hr := height(left), height(right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}
