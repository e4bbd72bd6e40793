package fixture

import "testing"

func TestEqualEnoughIgnoresVeinDifficulty(t *testing.T) {
	a := &MineralVein{ID: 5, Kind: "gold", Difficulty: 27}
	b := &MineralVein{ID: 5, Kind: "gold", Difficulty: 31}
	if a.Equals(b) {
		t.Fatal("veins with different DCs should not be value-equal")
	}
	if !EqualEnough(a, b) {
		t.Error("veins differing only in DC should be equal enough")
	}
	c := &MineralVein{ID: 5, Kind: "gold", Exposed: true, Difficulty: 27}
	if EqualEnough(a, c) {
		t.Error("exposure is not sensitive information")
	}
	if EqualEnough(a, &Ground{ID: 5, Kind: "gold"}) {
		t.Error("different variants are never equal enough")
	}
}

func TestCopyZero(t *testing.T) {
	u := &Unit{ID: 1, Owner: Player{ID: 2, Name: "p"}, Kind: "explorers", Name: "Scouts"}
	u.SetOrders(3, "go north")
	u.AddMember(&Worker{ID: 4, Name: "Ann", Race: "human", Stats: &Stats{Wisdom: 14}})

	full := u.Copy(false).(*Unit)
	if !full.Equals(u) {
		t.Error("full copy should equal original")
	}
	if full.Members[0] == u.Members[0] {
		t.Error("copy must be deep")
	}

	zeroed := u.Copy(true).(*Unit)
	if len(zeroed.Orders) != 0 {
		t.Error("zeroed copy kept orders")
	}
	if zeroed.Members[0].(*Worker).Stats != nil {
		t.Error("zeroed copy kept worker stats")
	}
	if !Matches(u, zeroed) {
		t.Error("zeroed copy should still match by identity")
	}
}

func TestCapabilities(t *testing.T) {
	v := &Village{ID: 1, Name: "Oakham", Owner: IndependentPlayer}
	if owner, ok := OwnerOf(v); !ok || !owner.Independent() {
		t.Errorf("OwnerOf(village) = %v, %v", owner, ok)
	}
	if !SetOwner(v, Player{ID: 3, Name: "Q"}) || v.Owner.ID != 3 {
		t.Error("SetOwner did not apply")
	}
	if SetOwner(&Forest{}, Player{}) {
		t.Error("forests have no owner")
	}
	if kind, ok := KindOf(&Shrub{Kind: "holly"}); !ok || kind != "holly" {
		t.Errorf("KindOf = %q, %v", kind, ok)
	}
	if !IsMobile(&Animal{}) || IsMobile(&Village{}) {
		t.Error("IsMobile misclassified")
	}
	if !IsNothing(Nothing) || IsNothing(&Hill{}) {
		t.Error("IsNothing misclassified")
	}
}

func TestModifier(t *testing.T) {
	tests := map[int]int{10: 0, 11: 0, 12: 1, 9: -1, 8: -1, 7: -2, 18: 4}
	for score, want := range tests {
		if got := Modifier(score); got != want {
			t.Errorf("Modifier(%d) = %d, want %d", score, got, want)
		}
	}
}

func TestExpose(t *testing.T) {
	g := &Ground{ID: 1, Kind: "granite"}
	exposed, ok := Expose(g)
	if !ok || !exposed.(*Ground).Exposed {
		t.Fatal("Expose did not expose ground")
	}
	if g.Exposed {
		t.Error("Expose must not mutate its argument")
	}
	again, _ := Expose(exposed)
	if !again.(*Ground).Exposed {
		t.Error("exposing twice must stay exposed")
	}
	if _, ok := Expose(&Forest{}); ok {
		t.Error("forests are not diggable")
	}
}

func TestLatestOrders(t *testing.T) {
	u := &Unit{}
	u.SetOrders(1, "first")
	u.SetOrders(4, "fourth")
	if got := u.LatestOrders(3); got != "first" {
		t.Errorf("LatestOrders(3) = %q", got)
	}
	if got := u.LatestOrders(9); got != "fourth" {
		t.Errorf("LatestOrders(9) = %q", got)
	}
	if got := u.LatestOrders(0); got != "" {
		t.Errorf("LatestOrders(0) = %q", got)
	}
}

func TestTownsCompareOwnersByID(t *testing.T) {
	mine := Player{ID: 3, Name: "Rival", Current: true}
	seen := Player{ID: 3, Name: "Rival"}
	if !(&Village{ID: 1, Owner: mine}).Equals(&Village{ID: 1, Owner: seen}) {
		t.Error("villages differing only in the owner's current flag should be equal")
	}
	if !(&Town{ID: 2, Owner: mine}).Equals(&Town{ID: 2, Owner: seen}) {
		t.Error("towns differing only in the owner's current flag should be equal")
	}
	if !(&Fortress{ID: 3, Owner: mine}).Equals(&Fortress{ID: 3, Owner: seen}) {
		t.Error("fortresses differing only in the owner's current flag should be equal")
	}
	if (&Village{ID: 1, Owner: mine}).Equals(&Village{ID: 1, Owner: IndependentPlayer}) {
		t.Error("villages with different owners should differ")
	}
}

func TestSkillRanks(t *testing.T) {
	w := &Worker{Jobs: []Job{
		{Name: "scout", Skills: []Skill{{Name: "Perception", Level: 2}, {Name: "stealth", Level: 4}}},
		{Name: "hunter", Skills: []Skill{{Name: "perception", Level: 1}}},
	}}
	if got := w.SkillRanks("perception"); got != 3 {
		t.Errorf("perception ranks = %d, want 3", got)
	}
	if got := w.SkillRanks("climbing"); got != 0 {
		t.Errorf("climbing ranks = %d, want 0", got)
	}
}
