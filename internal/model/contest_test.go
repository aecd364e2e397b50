package model

import "testing"

func TestKind_Olympiad(t *testing.T) {
	kind := &Kind{
		Title: "Olimpiada Fizyczna",
		Olympiads: []*Olympiad{
			{Name: "IPhO"},
			{Name: "EuPhO"},
		},
	}

	if o := kind.Olympiad("EuPhO"); o == nil || o.Name != "EuPhO" {
		t.Errorf("expected EuPhO, got %+v", o)
	}
	if o := kind.Olympiad("IMO"); o != nil {
		t.Errorf("expected nil for unknown olympiad, got %+v", o)
	}
}

func TestSnapshot_IsEmpty(t *testing.T) {
	var nilSnap *Snapshot
	if !nilSnap.IsEmpty() {
		t.Error("nil snapshot must be empty")
	}
	if !(&Snapshot{}).IsEmpty() {
		t.Error("zero snapshot must be empty")
	}
	if (&Snapshot{Kinds: []*Kind{{Title: "X"}}}).IsEmpty() {
		t.Error("snapshot with kinds is not empty")
	}
	if (&Snapshot{Contests: []*Contest{{Title: "Y"}}}).IsEmpty() {
		t.Error("snapshot with contests is not empty")
	}
}
