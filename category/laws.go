// SPDX-License-Identifier: MIT

package category

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Violation records one failed law check.
type Violation[Hom any] struct {
	// Law is ErrIdentityLaw or ErrAssociativityLaw.
	Law error

	// Homs are the morphisms under test: [f] for identity, [f g h] for associativity.
	Homs []Hom

	// Detail names the failing side of the law.
	Detail string
}

// Error implements error so a Violation can be returned or joined directly.
func (v Violation[Hom]) Error() string {
	return fmt.Sprintf("%v: %s", v.Law, v.Detail)
}

// Unwrap exposes the law sentinel to errors.Is.
func (v Violation[Hom]) Unwrap() error { return v.Law }

// Report summarizes a VerifyLaws run.
type Report[Hom any] struct {
	Identity      int // identity checks performed (one per morphism)
	Associativity int // composable triples checked
	Violations    []Violation[Hom]
}

// OK reports whether no violation was found.
func (r *Report[Hom]) OK() bool { return len(r.Violations) == 0 }

// Err joins all violations into one error, or returns nil.
func (r *Report[Hom]) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Violations))
	for i, v := range r.Violations {
		errs[i] = v
	}

	return errors.Join(errs...)
}

// lawCheck is one unit of parallel work; it returns a violation or nil.
type lawCheck[Hom any] func() (*Violation[Hom], error)

// VerifyLaws checks, over the given morphisms,
//
//	id(dom f);f = f  and  f;id(codom f) = f   for every f
//	(f;g);h = f;(g;h)                         for every composable triple
//
// Checks run in parallel (WithJobs). Law failures are collected into the
// Report in deterministic order; a composition error aborts the run and is
// returned as the error.
//
// Complexity: O(n + t) compositions, t = number of composable triples (≤ n³).
func VerifyLaws[Ob, Hom any](ctx context.Context, c Checkable[Ob, Hom], homs []Hom, opts ...Option) (*Report[Hom], error) {
	if c == nil {
		return nil, ErrNilCategory
	}
	o := resolve(opts)

	checks := make([]lawCheck[Hom], 0, len(homs))
	rep := &Report[Hom]{}
	for i := range homs {
		checks = append(checks, identityCheck(c, homs[i], i))
		rep.Identity++
	}
	for i, f := range homs {
		for j, g := range homs {
			if !c.EqualOb(c.Codom(f), c.Dom(g)) {
				continue
			}
			for k, h := range homs {
				if !c.EqualOb(c.Codom(g), c.Dom(h)) {
					continue
				}
				checks = append(checks, associativityCheck(c, f, g, h, [3]int{i, j, k}))
				rep.Associativity++
			}
		}
	}

	found := make([]*Violation[Hom], len(checks))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.jobs)
	for i, check := range checks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := check()
			if err != nil {
				return err
			}
			found[i] = v

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, v := range found {
		if v != nil {
			rep.Violations = append(rep.Violations, *v)
		}
	}

	return rep, nil
}

func identityCheck[Ob, Hom any](c Checkable[Ob, Hom], f Hom, idx int) lawCheck[Hom] {
	return func() (*Violation[Hom], error) {
		left, err := c.Compose(c.Id(c.Dom(f)), f)
		if err != nil {
			return nil, fmt.Errorf("category: id;f for hom %d: %w", idx, err)
		}
		if !c.EqualHom(left, f) {
			return &Violation[Hom]{Law: ErrIdentityLaw, Homs: []Hom{f}, Detail: fmt.Sprintf("id;f != f for hom %d", idx)}, nil
		}
		right, err := c.Compose(f, c.Id(c.Codom(f)))
		if err != nil {
			return nil, fmt.Errorf("category: f;id for hom %d: %w", idx, err)
		}
		if !c.EqualHom(right, f) {
			return &Violation[Hom]{Law: ErrIdentityLaw, Homs: []Hom{f}, Detail: fmt.Sprintf("f;id != f for hom %d", idx)}, nil
		}

		return nil, nil
	}
}

func associativityCheck[Ob, Hom any](c Checkable[Ob, Hom], f, g, h Hom, idx [3]int) lawCheck[Hom] {
	return func() (*Violation[Hom], error) {
		left, err := Sequence[Ob, Hom](c, f, g, h)
		if err != nil {
			return nil, fmt.Errorf("category: (f;g);h for homs %v: %w", idx, err)
		}
		gh, err := c.Compose(g, h)
		if err != nil {
			return nil, fmt.Errorf("category: g;h for homs %v: %w", idx, err)
		}
		right, err := c.Compose(f, gh)
		if err != nil {
			return nil, fmt.Errorf("category: f;(g;h) for homs %v: %w", idx, err)
		}
		if !c.EqualHom(left, right) {
			return &Violation[Hom]{
				Law:    ErrAssociativityLaw,
				Homs:   []Hom{f, g, h},
				Detail: fmt.Sprintf("(f;g);h != f;(g;h) for homs %v", idx),
			}, nil
		}

		return nil, nil
	}
}
