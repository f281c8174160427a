// SPDX-License-Identifier: MIT

package diagram

// DualOp re-tags an op-kind diagram as co-kind. The functor is shared.
func DualOp[Ob, Hom comparable](d Diagram[Op, Ob, Hom]) Diagram[Co, Ob, Hom] {
	return Diagram[Co, Ob, Hom]{functor: d.functor}
}

// DualCo re-tags a co-kind diagram as op-kind.
func DualCo[Ob, Hom comparable](d Diagram[Co, Ob, Hom]) Diagram[Op, Ob, Hom] {
	return Diagram[Op, Ob, Hom]{functor: d.functor}
}

// DualOpHom re-tags an op-kind morphism as co-kind with the same shape map,
// diagram map and cache.
func DualOpHom[Ob, Hom comparable](f DiagramHom[Op, Ob, Hom]) DiagramHom[Co, Ob, Hom] {
	return DiagramHom[Co, Ob, Hom]{hom: f.hom}
}

// DualCoHom re-tags a co-kind morphism as op-kind.
func DualCoHom[Ob, Hom comparable](f DiagramHom[Co, Ob, Hom]) DiagramHom[Op, Ob, Hom] {
	return DiagramHom[Op, Ob, Hom]{hom: f.hom}
}
