package lookahead

// addBinary registers the binary clause l1 ∨ l2 as mutual edges in the
// binary implication graph (¬l1 => l2 and ¬l2 => l1). Tautologies are
// rejected, and the call is idempotent if the same binary was the last
// one appended to ¬l1's adjacency list.
func (e *Engine) addBinary(l1, l2 Lit) {
	if l1.Negation() == l2 {
		return
	}
	adj := e.binary[l1.Negation()]
	if len(adj) > 0 && adj[len(adj)-1] == l2 {
		return
	}
	e.binary[l1.Negation()] = append(e.binary[l1.Negation()], l2)
	e.binary[l2.Negation()] = append(e.binary[l2.Negation()], l1)
	e.binaryTrail = append(e.binaryTrail, int(l1.Negation()))
	e.stats.AddBinary++
	if e.drat != nil && e.config.DRAT && e.mode == modeSearching {
		e.drat.AddBinary(l1, l2)
	}
}

// delBinary undoes the most recent addBinary that touched literal index
// idx, restoring watch symmetry: it pops one entry from idx's adjacency
// and the mirrored entry from that literal's negation's adjacency.
func (e *Engine) delBinary(idx int) {
	lits := e.binary[idx]
	l := lits[len(lits)-1]
	e.binary[idx] = lits[:len(lits)-1]
	other := e.binary[l.Negation()]
	e.binary[l.Negation()] = other[:len(other)-1]
	e.stats.DelBinary++
}
