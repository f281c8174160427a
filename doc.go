// Package lvcat is a small workbench for applied category theory: finite
// categories, functors and natural transformations as plain Go values, and
// on top of them diagrams and the three variances of diagram morphism.
//
// 🚀 What is in the box?
//
//   - core/     - thread-safe generating graphs (vertices + named edges)
//   - dfs/      - topological order and cycle witnesses for those graphs
//   - category/ - the Category interface, Sequence, parallel law checks
//   - fincat/   - finite categories, free categories, functors, transformations
//   - shapes/   - standard indexing shapes: Point, Path, Span, Cospan, ParallelPair
//   - diagram/  - Diagram and DiagramHom of kind ID, Op or Co; Dom, Codom, Id,
//     Compose and the Op/Co duality
//   - cmd/lvcat - CLI running the built-in law-check scenarios
//
// ✨ Guarantees
//
//   - Composition is diagrammatic everywhere: Compose(f, g) is f;g.
//   - Enumeration is deterministic (sorted), so output and tests are stable.
//   - Mixing diagram kinds is a compile error; the type-erased AnyHom layer
//     reports it at run time instead.
//
// Quick example, the free category on a two-edge path:
//
//	A ──a──▶ B ──b──▶ E
//
// has six morphisms: three identities, a, b and the composite a;b.
//
//	go install github.com/katalvlaran/lvcat/cmd/lvcat@latest
//	lvcat laws
package lvcat
