// SPDX-License-Identifier: MIT

package scenario

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcat/category"
)

// ErrUnknownScenario indicates a name not present in the registry.
var ErrUnknownScenario = errors.New("scenario: unknown scenario")

// Outcome is the aggregated result of one scenario.
type Outcome struct {
	Homs          int // morphisms under test
	Identity      int
	Associativity int
	Violations    int
	Err           error // joined law violations, nil when clean
}

// OK reports whether no law was violated.
func (o Outcome) OK() bool { return o.Violations == 0 }

func (o *Outcome) add(homs, identity, assoc, violations int, err error) {
	o.Homs += homs
	o.Identity += identity
	o.Associativity += assoc
	o.Violations += violations
	o.Err = errors.Join(o.Err, err)
}

// Scenario is a named law check.
type Scenario struct {
	Name    string
	Summary string
	run     func(ctx context.Context, opts []category.Option) (Outcome, error)
}

// Run builds the fixture and verifies the category laws over it. Fixture
// construction failures and composition errors are returned as the error;
// law violations are reported in the Outcome.
func (s Scenario) Run(ctx context.Context, opts ...category.Option) (Outcome, error) {
	out, err := s.run(ctx, opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	return out, nil
}

var registry = []Scenario{
	{Name: "shapes", Summary: "standard shape categories", run: runShapes},
	{Name: "diagrams-id", Summary: "id-kind diagram category over A -a-> B -b-> E", run: runID},
	{Name: "diagrams-op", Summary: "op-kind diagram category over A -a-> B -b-> E", run: runOp},
	{Name: "diagrams-co", Summary: "co-kind diagram category over A -a-> B -b-> E", run: runCo},
	{Name: "diagrams-dual", Summary: "co-kind duals of the op-kind fixture", run: runDual},
}

// All returns every scenario, sorted by name.
func All() []Scenario {
	out := slices.Clone(registry)
	slices.SortFunc(out, func(a, b Scenario) int { return cmp.Compare(a.Name, b.Name) })

	return out
}

// Names returns the sorted scenario names.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}

	return names
}

// Select returns the named scenarios in the given order; no names means all.
//
// Errors:
//   - ErrUnknownScenario for the first name not registered.
func Select(names ...string) ([]Scenario, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Scenario, 0, len(names))
	for _, n := range names {
		i := slices.IndexFunc(registry, func(s Scenario) bool { return s.Name == n })
		if i < 0 {
			return nil, fmt.Errorf("%q: %w", n, ErrUnknownScenario)
		}
		out = append(out, registry[i])
	}

	return out, nil
}

func verify[Ob, Hom any](ctx context.Context, out *Outcome, c category.Checkable[Ob, Hom], homs []Hom, opts []category.Option) error {
	rep, err := category.VerifyLaws(ctx, c, homs, opts...)
	if err != nil {
		return err
	}
	out.add(len(homs), rep.Identity, rep.Associativity, len(rep.Violations), rep.Err())

	return nil
}
