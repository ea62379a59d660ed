package typedefs

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"declc/internal/ast"
)

const snapshotVersion = 1

type snapshotEntry struct {
	Name  string
	Root  uint32
	Nodes []ast.Node
}

type snapshot struct {
	Version uint32
	Entries []snapshotEntry
}

// Save writes the user-defined typedefs to w. Predefined names are skipped;
// they are re-seeded from the dialect on load.
func (r *Registry) Save(w io.Writer) error {
	snap := snapshot{Version: snapshotVersion}
	for _, name := range r.Names() {
		if r.predefined[name] {
			continue
		}
		tmp := ast.NewTree(8)
		root := r.tree.CopyInto(tmp, r.defs[name])
		snap.Entries = append(snap.Entries, snapshotEntry{
			Name:  name,
			Root:  uint32(root),
			Nodes: tmp.Nodes.Items(),
		})
	}
	if err := msgpack.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("encode typedef snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from r2 and merges its definitions into the
// registry. Conflicting definitions keep the existing one.
func (r *Registry) Load(r2 io.Reader) error {
	var snap snapshot
	if err := msgpack.NewDecoder(r2).Decode(&snap); err != nil {
		return fmt.Errorf("decode typedef snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("typedef snapshot version %d not supported", snap.Version)
	}
	for _, e := range snap.Entries {
		off := r.tree.Nodes.Len()
		for _, n := range e.Nodes {
			remapNode(&n, off)
			r.tree.New(n)
		}
		r.Define(e.Name, ast.NodeID(e.Root+off))
	}
	return nil
}

// remapNode shifts every node link by off so an entry's private id space
// lands after the nodes already in the tree.
func remapNode(n *ast.Node, off uint32) {
	shift := func(id *ast.NodeID) {
		if *id != ast.NoNode {
			*id += ast.NodeID(off)
		}
	}
	shift(&n.Parent)
	shift(&n.Array.Of)
	shift(&n.Ptr.To)
	shift(&n.PtrMbr.To)
	shift(&n.Func.Ret)
	shift(&n.TypedefFor)
	shift(&n.EnumOf)
	for i := range n.Func.Params {
		shift(&n.Func.Params[i].Node)
	}
	for i := range n.Captures {
		shift(&n.Captures[i])
	}
}
