/*
Package bintree provides the tree vocabulary shared by the newick and pace
packages: leaf labels, inner node indices, the TreeBuilder interface through
which parsers materialize nodes, and two reference tree implementations.

A parser never decides what a node looks like in memory. It calls into a
TreeBuilder, so any type implementing NewInner, NewLeaf and MakeRoot gets a
full Newick parser for free. BinTree discards the inner node indices assigned
during parsing; IndexedBinTree keeps them.

Inner node indices are assigned in pre-order: a node's own index is smaller
than every index in its left subtree, which in turn precedes every index in
its right subtree. Leaves do not consume indices; they are identified by
their label.
*/
package bintree
