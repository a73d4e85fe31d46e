package lookahead

import "testing"

type fakeSink struct {
	units   []Lit
	binarys [][2]Lit
}

func (f *fakeSink) AddClause(lits []Lit) {}
func (f *fakeSink) AddBinary(l1, l2 Lit) { f.binarys = append(f.binarys, [2]Lit{l1, l2}) }
func (f *fakeSink) AddUnit(lit Lit)      { f.units = append(f.units, lit) }

func TestDratRecordsUnitsOnlyWhenEnabledAndSearching(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DRAT = true
	e := New(2, nil, cfg)
	sink := &fakeSink{}
	e.SetDratSink(sink)

	e.assign(IntToLit(1))
	if len(sink.units) != 1 || sink.units[0] != IntToLit(1) {
		t.Errorf("expected one recorded unit for IntToLit(1), got %v", sink.units)
	}
}

func TestDratSilentWhenDisabled(t *testing.T) {
	e := New(2, nil, DefaultConfig()) // DRAT disabled by default
	sink := &fakeSink{}
	e.SetDratSink(sink)

	e.assign(IntToLit(1))
	if len(sink.units) != 0 {
		t.Errorf("DRAT should stay silent when Config.DRAT is false, got %v", sink.units)
	}
}

func TestDratSilentDuringLookahead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DRAT = true
	e := New(2, nil, cfg)
	sink := &fakeSink{}
	e.SetDratSink(sink)

	e.mode = modeLookahead1
	e.assign(IntToLit(1))
	if len(sink.units) != 0 {
		t.Errorf("DRAT should not record assignments made during a lookahead probe, got %v", sink.units)
	}
}
