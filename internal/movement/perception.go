package movement

import (
	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
)

// perceptionBase is added to a unit's best Perception score when checking
// whether it notices something in passing.
const perceptionBase = 15

// discoveryFatigue is subtracted from the running Perception budget after
// each thing noticed in one step.
const discoveryFatigue = 5

// HighestPerception returns the best Perception score among the unit's
// workers: Wisdom modifier plus twice the ranks in the Perception skill.
// A unit with no workers scores 0.
func HighestPerception(u *fixture.Unit) int {
	if u == nil {
		return 0
	}
	best := 0
	found := false
	for _, w := range u.Workers() {
		score := 2 * w.SkillRanks("perception")
		if w.Stats != nil {
			score += fixture.Modifier(w.Stats.Wisdom)
		}
		if !found || score > best {
			best = score
			found = true
		}
	}
	return best
}

// ShouldAlwaysNotice reports whether observer notices f without a check:
// towns owned by the observer's own player, hills and forests.
func ShouldAlwaysNotice(observer *fixture.Unit, f fixture.Fixture) bool {
	switch v := f.(type) {
	case nil:
		return false
	case *fixture.Hill, *fixture.Forest:
		return true
	default:
		if !fixture.IsTown(v) || observer == nil {
			return false
		}
		owner, _ := fixture.OwnerOf(v)
		return fixture.SamePlayer(owner, observer.Owner)
	}
}

// ShouldSometimesNotice reports whether observer, moving at speed, could
// notice f at all: its best Perception plus the speed modifier plus 15
// must reach f's DC. The observer never notices itself.
func ShouldSometimesNotice(observer *fixture.Unit, speed Speed, f fixture.Fixture) bool {
	if f == nil {
		return false
	}
	if observer != nil && f == fixture.Fixture(observer) {
		return false
	}
	return HighestPerception(observer)+speed.PerceptionModifier()+perceptionBase >= f.DC()
}

// SelectNoticed shuffles candidates and walks them rolling d20 + 1 + the
// mover's Perception against each one's DC. Every success is kept and
// makes the next discovery harder by 5; failures are skipped.
func SelectNoticed[T any](rng *entropy.Source, candidates []T, dc func(T) int, mover *fixture.Unit, speed Speed) []T {
	perception := HighestPerception(mover) + speed.PerceptionModifier()
	var noticed []T
	for _, c := range entropy.Shuffled(rng, candidates) {
		if rng.D20()+1+perception >= dc(c) {
			noticed = append(noticed, c)
			perception -= discoveryFatigue
		}
	}
	return noticed
}
