/*
Package newick provides facilities for reading and writing binary trees in the
Newick format as used by the PACE 2026 challenge:

	Tree     := '(' Tree ',' Tree ')' | Number
	TopLevel := Tree ';'

Leaves are labelled with unsigned 32 bit integers; inner nodes carry neither
names nor branch lengths, and comments are not supported. Whitespace is
rejected unless explicitly allowed on the Lexer (or Reader).

The parser does not define a tree type of its own. Nodes are materialized
through a bintree.TreeBuilder, which also receives the pre-order index of
every inner node. The writer accepts any bintree.Node.

Every error is fatal; there is no recovery from malformed input.
*/
package newick
