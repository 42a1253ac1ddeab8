package category

// parents maps each category to its direct supercategories. This edge
// list is the single source of truth for the subsumption order; the
// closure below is derived from it at init.
//
// CommutativeAlgebra deliberately refines CommutativeRing only, not
// Algebra: the two branches meet at Ring.
var parents = map[Category][]Category{
	Ring:                 nil,
	CommutativeRing:      {Ring},
	IntegralDomain:       {CommutativeRing},
	DedekindDomain:       {IntegralDomain},
	PrincipalIdealDomain: {DedekindDomain},
	Field:                {CommutativeRing},
	Algebra:              {Ring},
	CommutativeAlgebra:   {CommutativeRing},
}

// closure[c][d] holds iff c is strictly below d in the subsumption
// order. Precomputed so IsA never walks edges at query time.
var closure map[Category]map[Category]bool

func init() {
	closure = make(map[Category]map[Category]bool, len(all))
	for _, c := range all {
		closure[c] = make(map[Category]bool)
		walkAncestors(c, c, 0)
	}
	// Strictness: the derived closure must be irreflexive. A cycle in
	// the edge list would have put c above itself.
	for _, c := range all {
		if closure[c][c] {
			panic("category: subsumption edges contain a cycle through " + string(c))
		}
	}
}

// walkAncestors records every strict ancestor of origin reachable from
// c. depth guards against malformed edge lists at init.
func walkAncestors(origin, c Category, depth int) {
	if depth > len(all) {
		panic("category: subsumption edges contain a cycle through " + string(origin))
	}
	for _, p := range parents[c] {
		if !p.IsValid() {
			panic("category: edge from " + string(c) + " to unknown category " + string(p))
		}
		closure[origin][p] = true
		walkAncestors(origin, p, depth+1)
	}
}

// IsA reports whether a structure tagged c belongs to category target:
// true iff c equals target or lies strictly below it in the lattice.
// O(1); both arguments must be valid categories (invalid input is
// simply not subsumed by anything).
func IsA(c, target Category) bool {
	if c == target {
		return c.IsValid()
	}
	return closure[c][target]
}

// Parents returns the direct supercategories of c in lattice order.
func Parents(c Category) []Category {
	ps := parents[c]
	out := make([]Category, len(ps))
	copy(out, ps)
	return out
}

// Implied returns c followed by every strict ancestor, in the fixed
// display order of All. Tagging a structure with c asserts membership
// in every returned category.
func Implied(c Category) []Category {
	if !c.IsValid() {
		return nil
	}
	out := []Category{c}
	for _, d := range all {
		if d != c && closure[c][d] {
			out = append(out, d)
		}
	}
	return out
}
