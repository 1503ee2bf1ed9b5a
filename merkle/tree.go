// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package merkle

// Tree is a complete sorted-pair tree over a fixed list of leaves. A node
// without a sibling is promoted to the next layer unchanged.
type Tree struct {
	// layers[0] holds the leaves and the last layer holds the root.
	layers [][][]byte
}

// NewTree builds the tree committing to [addresses].
func NewTree(addresses []string) (*Tree, error) {
	if len(addresses) == 0 {
		return nil, ErrNoLeaves
	}

	leaves := make([][]byte, len(addresses))
	for i, address := range addresses {
		leaves[i] = Leaf(address)
	}

	layers := [][][]byte{leaves}
	for layer := leaves; len(layer) > 1; {
		next := make([][]byte, 0, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i+1 == len(layer) {
				next = append(next, layer[i])
				continue
			}
			next = append(next, Hash(layer[i], layer[i+1]))
		}
		layers = append(layers, next)
		layer = next
	}
	return &Tree{layers: layers}, nil
}

func (t *Tree) Root() []byte {
	return t.layers[len(t.layers)-1][0]
}

// Proof returns the sibling path of the [index]th leaf.
func (t *Tree) Proof(index int) ([][]byte, error) {
	if index < 0 || index >= len(t.layers[0]) {
		return nil, ErrIndexOutOfBounds
	}

	var proof [][]byte
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := index ^ 1
		if sibling < len(layer) {
			proof = append(proof, layer[sibling])
		}
		index /= 2
	}
	return proof, nil
}
