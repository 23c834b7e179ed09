package grammar

// FIRST and FOLLOW are computed by the same two-phase recipe: seed a table
// with the immediately-visible symbols (which may themselves still be
// nonterminals), then repeatedly replace every nonterminal entry with its
// own current set until the table stops changing. Because the terminal set
// is finite and entries only grow, this is guaranteed to terminate with
// every entry containing only terminals.

// First returns FIRST(sym) as terminals in canonical order. If sym is
// itself a terminal, FIRST(sym) = {sym}.
func (g *Grammar[S]) First(sym S) []S {
	if g.IsTerminal(sym) {
		return []S{sym}
	}
	g.ensureFirst()
	return setToSortedSlice(g.first[sym])
}

// Follow returns FOLLOW(nonterminal) as terminals in canonical order.
func (g *Grammar[S]) Follow(nonterm S) []S {
	g.ensureFollow()
	return setToSortedSlice(g.follow[nonterm])
}

func (g *Grammar[S]) ensureFirst() {
	if g.first != nil {
		return
	}
	table := g.seedFirst()
	for changed := true; changed; {
		changed = false
		next := g.firstStep(table)
		for nt, set := range next {
			if !setsEqual(set, table[nt]) {
				changed = true
			}
		}
		table = next
	}
	g.first = table
}

// seedFirst examines the first symbol of every production of every rule,
// skipping self-referential productions (A -> A ...), and inserts it
// directly (terminal or nonterminal alike) into FIRST(A).
func (g *Grammar[S]) seedFirst() map[S]map[S]bool {
	table := make(map[S]map[S]bool, len(g.rules))
	for _, name := range g.nonterms {
		table[name] = map[S]bool{}
		rule := g.rules[name]
		for _, prod := range rule.Productions {
			if len(prod) == 0 {
				continue
			}
			if prod[0] == name {
				continue
			}
			table[name][prod[0]] = true
		}
	}
	return table
}

func (g *Grammar[S]) firstStep(input map[S]map[S]bool) map[S]map[S]bool {
	out := make(map[S]map[S]bool, len(input))
	for name, entries := range input {
		set := map[S]bool{}
		for sym := range entries {
			if g.IsTerminal(sym) {
				set[sym] = true
			} else {
				for t := range input[sym] {
					set[t] = true
				}
			}
		}
		out[name] = set
	}
	return out
}

func (g *Grammar[S]) ensureFollow() {
	if g.follow != nil {
		return
	}
	g.ensureFirst()
	table := g.seedFollow()
	for changed := true; changed; {
		changed = false
		next := g.followStep(table)
		for nt, set := range next {
			if !setsEqual(set, table[nt]) {
				changed = true
			}
		}
		table = next
	}
	g.follow = table
}

// seedFollow implements A -> alpha X beta: if beta starts with a terminal,
// add it to FOLLOW(X); if beta starts with a nonterminal Y, add FIRST(Y)
// (already fully resolved terminals by this point); if X is last in the
// production and X != A, record a pending placeholder entry of A itself in
// FOLLOW(X) for the fixed-point pass to resolve into FOLLOW(A). The start
// symbol's FOLLOW is seeded explicitly with EOF per the data model.
func (g *Grammar[S]) seedFollow() map[S]map[S]bool {
	table := make(map[S]map[S]bool, len(g.rules))
	ensure := func(sym S) map[S]bool {
		set, ok := table[sym]
		if !ok {
			set = map[S]bool{}
			table[sym] = set
		}
		return set
	}
	ensure(g.start)[g.eof] = true

	for name, rule := range g.rules {
		for _, prod := range rule.Productions {
			for i := 0; i < len(prod)-1; i++ {
				sym := prod[i]
				if g.IsTerminal(sym) {
					continue
				}
				next := prod[i+1]
				entry := ensure(sym)
				if g.IsTerminal(next) {
					entry[next] = true
				} else {
					for _, t := range g.First(next) {
						entry[t] = true
					}
				}
			}
			if len(prod) == 0 {
				continue
			}
			last := prod[len(prod)-1]
			if !g.IsTerminal(last) && last != name {
				ensure(last)[name] = true
			}
		}
	}
	return table
}

func (g *Grammar[S]) followStep(input map[S]map[S]bool) map[S]map[S]bool {
	out := make(map[S]map[S]bool, len(input))
	for nonterm, terms := range input {
		set := map[S]bool{}
		for t := range terms {
			if g.IsTerminal(t) {
				set[t] = true
			} else if entry, ok := input[t]; ok {
				for u := range entry {
					set[u] = true
				}
			}
		}
		out[nonterm] = set
	}
	return out
}

func setsEqual[S Symbol](a, b map[S]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func setToSortedSlice[S Symbol](set map[S]bool) []S {
	out := make([]S, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sortSymbols(out)
	return out
}
