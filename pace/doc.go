/*
Package pace reads instances in the PACE 2026 format: a line oriented
container bundling a header, metadata lines and several Newick trees.

	#p 2 3
	# a comment
	#s source generated
	#a 1.5 42
	#x treedecomp [1,[[1,2],[2,3]],[[1,2]]]
	((1,2),3);
	(1,(2,3));

Two levels of API are provided. Reader classifies every line and dispatches
it to a Visitor, leaving all interpretation to the caller. ReadInstance builds
on Reader and returns an Instance holding all trees, materialized through a
caller supplied bintree.TreeBuilder, and the optional tree decomposition.

Reading stops at the first malformed line; there is no recovery.
*/
package pace
