package movement

import (
	"testing"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
)

func scout(wisdom, ranks int) *fixture.Worker {
	return &fixture.Worker{
		ID:    10,
		Name:  "Scout",
		Stats: &fixture.Stats{Wisdom: wisdom},
		Jobs: []fixture.Job{{
			Name:   "ranger",
			Level:  1,
			Skills: []fixture.Skill{{Name: "Perception", Level: ranks}},
		}},
	}
}

func TestHighestPerception(t *testing.T) {
	u := &fixture.Unit{ID: 1}
	if got := HighestPerception(u); got != 0 {
		t.Errorf("empty unit perception = %d, want 0", got)
	}
	u.AddMember(scout(14, 1)) // +2 + 2
	u.AddMember(scout(10, 3)) // 0 + 6
	u.AddMember(&fixture.Animal{ID: 3, Kind: "dog"})
	if got := HighestPerception(u); got != 6 {
		t.Errorf("perception = %d, want 6", got)
	}
}

func TestShouldAlwaysNotice(t *testing.T) {
	me := fixture.Player{ID: 1, Name: "me"}
	u := &fixture.Unit{ID: 1, Owner: me}
	if !ShouldAlwaysNotice(u, &fixture.Village{Owner: me}) {
		t.Error("own village should always be noticed")
	}
	if ShouldAlwaysNotice(u, &fixture.Village{Owner: fixture.Player{ID: 2}}) {
		t.Error("foreign village needs a check")
	}
	if !ShouldAlwaysNotice(u, &fixture.Hill{}) || !ShouldAlwaysNotice(u, &fixture.Forest{}) {
		t.Error("hills and forests are always noticed")
	}
	if ShouldAlwaysNotice(u, nil) {
		t.Error("nil fixture is never noticed")
	}
}

func TestShouldSometimesNotice(t *testing.T) {
	u := &fixture.Unit{ID: 1}
	u.AddMember(scout(10, 2)) // perception 4
	if !ShouldSometimesNotice(u, Normal, &fixture.Animal{Difficulty: 19}) {
		t.Error("DC 19 is within 4+0+15")
	}
	if ShouldSometimesNotice(u, Normal, &fixture.Animal{Difficulty: 20}) {
		t.Error("DC 20 is beyond 4+0+15")
	}
	if !ShouldSometimesNotice(u, Careful, &fixture.Animal{Difficulty: 23}) {
		t.Error("careful movement adds 4")
	}
	if ShouldSometimesNotice(u, Normal, u) {
		t.Error("a unit never notices itself")
	}
	if ShouldSometimesNotice(u, Normal, nil) {
		t.Error("nil fixture is never noticed")
	}
}

func TestSelectNoticed(t *testing.T) {
	rng := entropy.New(11)
	dc := func(f fixture.Fixture) int { return f.DC() }

	easy := []fixture.Fixture{
		&fixture.Animal{ID: 1, Difficulty: -50},
		&fixture.Animal{ID: 2, Difficulty: -50},
	}
	if got := SelectNoticed(rng, easy, dc, nil, Normal); len(got) != 2 {
		t.Errorf("trivial DCs: noticed %d, want 2", len(got))
	}

	impossible := []fixture.Fixture{&fixture.Animal{ID: 3, Difficulty: 100}}
	if got := SelectNoticed(rng, impossible, dc, nil, Meticulous); len(got) != 0 {
		t.Errorf("impossible DC noticed: %v", got)
	}

	// Fatigue: DC 12 needs 11 on the d20, then 16 after one discovery, and
	// is out of reach after two.
	reachable := make([]fixture.Fixture, 30)
	for i := range reachable {
		reachable[i] = &fixture.Animal{ID: i, Difficulty: 12}
	}
	most := 0
	for seed := int64(1); seed <= 20; seed++ {
		got := SelectNoticed(entropy.New(seed), reachable, dc, nil, Normal)
		if len(got) > 2 {
			t.Fatalf("seed %d: fatigue should cap discoveries at 2, got %d", seed, len(got))
		}
		most = max(most, len(got))
	}
	if most != 2 {
		t.Errorf("best run noticed %d, want 2", most)
	}
}
