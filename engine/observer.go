package engine

// TraversalObserver receives fine-grained traversal events. Implementations
// must be safe for concurrent use when the engine runs with parallelism.
type TraversalObserver interface {
	// OnNode is called once per explored lattice node.
	OnNode()

	// OnHUTPrune is called when a subtree is pruned because its
	// head-union-tail is subsumed by a discovered maximal itemset.
	OnHUTPrune()

	// OnPEPFold is called when parent-equivalent items are folded into a
	// head. items is the number of folded items.
	OnPEPFold(items int)

	// OnSupportCount is called once per bitmap AND + popcount.
	OnSupportCount()

	// OnInsert is called after a leaf insertion attempt. accepted is false
	// when the candidate was subsumed by an existing member.
	OnInsert(accepted bool)
}

// NoopTraversalObserver is a no-op implementation of TraversalObserver.
type NoopTraversalObserver struct{}

func (NoopTraversalObserver) OnNode()         {}
func (NoopTraversalObserver) OnHUTPrune()     {}
func (NoopTraversalObserver) OnPEPFold(int)   {}
func (NoopTraversalObserver) OnSupportCount() {}
func (NoopTraversalObserver) OnInsert(bool)   {}
