package pace

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TreeDecomposition holds the `treedecomp` parameter of an instance. All
// indices are 1-based: the edge (u, v) connects Bags[u-1] and Bags[v-1].
//
// Its JSON form is the array [treewidth, bags, edges], e.g.
//
//	[2,[[8,16],[8,11,16]],[[1,2]]]
//
// Nothing beyond the shape is validated.
type TreeDecomposition struct {
	Treewidth uint32
	Bags      [][]uint32
	Edges     [][2]uint32
}

// ParseTreeDecomposition decodes the JSON form of a tree decomposition.
func ParseTreeDecomposition(data []byte) (*TreeDecomposition, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, errors.New("expected a tree decomposition, got nothing")
	}
	td := new(TreeDecomposition)
	if err := json.Unmarshal(trimmed, td); err != nil {
		return nil, err
	}
	return td, nil
}

// MarshalJSON encodes td as a three element array.
func (td TreeDecomposition) MarshalJSON() ([]byte, error) {
	bags := td.Bags
	if bags == nil {
		bags = [][]uint32{}
	}
	edges := td.Edges
	if edges == nil {
		edges = [][2]uint32{}
	}
	return json.Marshal([]interface{}{td.Treewidth, bags, edges})
}

// UnmarshalJSON decodes a three element array. Any other shape, including
// edges that are not pairs, is rejected.
func (td *TreeDecomposition) UnmarshalJSON(data []byte) error {
	var parts []jsoniter.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(err, "expected a sequence of three elements: "+
			"treewidth, bags, edges")
	}
	if len(parts) != 3 {
		return errors.Errorf("expected a sequence of three elements: "+
			"treewidth, bags, edges; got %d elements", len(parts))
	}

	for i, part := range parts {
		if string(bytes.TrimSpace(part)) == "null" {
			return errors.Errorf("element %d of tree decomposition is null", i+1)
		}
	}

	var decoded TreeDecomposition
	if err := json.Unmarshal(parts[0], &decoded.Treewidth); err != nil {
		return errors.Wrap(err, "invalid treewidth")
	}
	bags, err := decodeIDLists(parts[1], "bag")
	if err != nil {
		return errors.Wrap(err, "invalid bags")
	}
	decoded.Bags = bags

	edges, err := decodeIDLists(parts[2], "edge")
	if err != nil {
		return errors.Wrap(err, "invalid edges")
	}
	decoded.Edges = make([][2]uint32, len(edges))
	for i, edge := range edges {
		if len(edge) != 2 {
			return errors.Errorf("edge %d has %d endpoints, expected 2",
				i+1, len(edge))
		}
		decoded.Edges[i] = [2]uint32{edge[0], edge[1]}
	}

	*td = decoded
	return nil
}

// decodeIDLists decodes an array of arrays of unsigned integers. Unlike a
// plain [][]uint32, null is rejected at every level.
func decodeIDLists(data []byte, what string) ([][]uint32, error) {
	var lists []*[]*uint32
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, err
	}
	if lists == nil {
		return nil, errors.New("expected an array, got null")
	}

	out := make([][]uint32, len(lists))
	for i, list := range lists {
		if list == nil {
			return nil, errors.Errorf("%s %d is null", what, i+1)
		}
		out[i] = make([]uint32, len(*list))
		for j, id := range *list {
			if id == nil {
				return nil, errors.Errorf("%s %d has null at position %d", what, i+1, j+1)
			}
			out[i][j] = *id
		}
	}
	return out, nil
}
