package exploration

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// The editing operations below apply one change to the matching object in
// every map. Object identity differs between map instances, so matches
// are made by owner, kind, name and ID. Each returns false, without
// error, when no map has a match.

// MoveMember transfers member from one unit to another in every map that
// has both units and the member.
func (m *Model) MoveMember(member fixture.Fixture, from, to *fixture.Unit) bool {
	changed := false
	for _, mp := range m.Maps() {
		src, ok := matchingUnit(mp, from)
		if !ok {
			continue
		}
		dst, ok := matchingUnit(mp, to)
		if !ok {
			continue
		}
		target := memberOf(src.unit, member)
		if target == nil {
			continue
		}
		src.unit.RemoveMember(target)
		dst.unit.AddMember(target)
		mp.SetModified(true)
		changed = true
	}
	if !changed {
		slog.Debug("member to move not found", "member", member.String())
	}
	return changed
}

// AddUnitMember adds a copy of member to the matching unit in every map.
// Only workers, animals, immortals and resource piles can join a unit.
func (m *Model) AddUnitMember(unit *fixture.Unit, member fixture.Fixture) bool {
	if !fixture.IsUnitMember(member) {
		slog.Warn("fixture cannot join a unit", "fixture", member.String(), "unit", unit.String())
		return false
	}
	changed := false
	for _, mp := range m.Maps() {
		pl, ok := matchingUnit(mp, unit)
		if !ok {
			continue
		}
		pl.unit.AddMember(member.Copy(false))
		mp.SetModified(true)
		changed = true
	}
	return changed
}

// RemoveUnit deletes unit from every map. Every map's copy (matched by
// owner and ID) must be empty and carry the same name and kind as unit;
// otherwise nothing is removed and ErrRemovalPrecondition is returned.
func (m *Model) RemoveUnit(unit *fixture.Unit) (bool, error) {
	type target struct {
		mp *world.Map
		pl placement
	}
	var targets []target
	for _, mp := range m.Maps() {
		for _, pl := range unitsIn(mp) {
			if pl.unit.ID != unit.ID || pl.unit.Owner.ID != unit.Owner.ID {
				continue
			}
			if !pl.unit.Empty() || pl.unit.Name != unit.Name || pl.unit.Kind != unit.Kind {
				return false, fmt.Errorf("%w: %s at %v", ErrRemovalPrecondition, pl.unit, pl.point)
			}
			targets = append(targets, target{mp: mp, pl: pl})
		}
	}
	if len(targets) == 0 {
		slog.Debug("unit to remove not found", "unit", unit.String())
		return false, nil
	}
	removed := false
	for _, t := range targets {
		if !t.pl.remove(t.mp) {
			slog.Warn("failed to remove unit from a map", "unit", unit.String(), "location", t.pl.point)
			continue
		}
		t.mp.SetModified(true)
		removed = true
	}
	return removed, nil
}

// RenameItem renames the matching unit, worker or town in every map.
func (m *Model) RenameItem(item fixture.Fixture, name string) bool {
	if _, ok := fixture.NameOf(item); !ok {
		return false
	}
	return m.applyEverywhere(item, "rename", func(mp *world.Map, f fixture.Fixture) bool {
		return fixture.SetName(f, name)
	})
}

// ChangeKind changes the kind of the matching fixture in every map.
func (m *Model) ChangeKind(item fixture.Fixture, kind string) bool {
	if _, ok := fixture.KindOf(item); !ok {
		return false
	}
	return m.applyEverywhere(item, "change kind", func(mp *world.Map, f fixture.Fixture) bool {
		return fixture.SetKind(f, kind)
	})
}

// ChangeOwner gives the matching unit or town to newOwner in every map,
// using each map's own record of that player where it has one.
func (m *Model) ChangeOwner(item fixture.Fixture, newOwner fixture.Player) bool {
	if _, ok := fixture.OwnerOf(item); !ok {
		return false
	}
	return m.applyEverywhere(item, "change owner", func(mp *world.Map, f fixture.Fixture) bool {
		owner := newOwner
		if local, ok := mp.Player(newOwner.ID); ok {
			owner = local
		}
		return fixture.SetOwner(f, owner)
	})
}

// SortFixtureContents orders the members of the matching unit or fortress
// in every map: workers, then immortals, animals, resources, anything
// else; by kind or name within each group, then by ID.
func (m *Model) SortFixtureContents(container fixture.Fixture) bool {
	if _, ok := fixture.Contents(container); !ok {
		return false
	}
	return m.applyEverywhere(container, "sort", func(mp *world.Map, f fixture.Fixture) bool {
		switch v := f.(type) {
		case *fixture.Unit:
			slices.SortStableFunc(v.Members, compareMembers)
		case *fixture.Fortress:
			slices.SortStableFunc(v.Members, compareMembers)
		default:
			return false
		}
		return true
	})
}

// DismissUnitMember removes member from whichever unit holds it in every
// map and remembers it as dismissed.
func (m *Model) DismissUnitMember(member fixture.Fixture) bool {
	changed := false
	for _, mp := range m.Maps() {
		for _, pl := range unitsIn(mp) {
			target := memberOf(pl.unit, member)
			if target == nil {
				continue
			}
			pl.unit.RemoveMember(target)
			mp.SetModified(true)
			if !changed {
				m.dismissed = append(m.dismissed, target)
			}
			changed = true
			break
		}
	}
	if !changed {
		slog.Debug("member to dismiss not found", "member", member.String())
	}
	return changed
}

// AddSibling adds a copy of sibling to whichever unit holds existing, in
// every map.
func (m *Model) AddSibling(existing, sibling fixture.Fixture) bool {
	changed := false
	for _, mp := range m.Maps() {
		for _, pl := range unitsIn(mp) {
			if memberOf(pl.unit, existing) == nil {
				continue
			}
			pl.unit.AddMember(sibling.Copy(false))
			mp.SetModified(true)
			changed = true
			break
		}
	}
	return changed
}

// applyEverywhere runs change on every fixture, in every map, matching
// ref, and marks each touched map modified.
func (m *Model) applyEverywhere(ref fixture.Fixture, op string, change func(*world.Map, fixture.Fixture) bool) bool {
	var matches [][]located
	for _, mp := range m.Maps() {
		matches = append(matches, matchesIn(mp, ref))
	}
	changed := false
	for i, mp := range m.Maps() {
		for _, l := range matches[i] {
			if change(mp, l.item) {
				mp.SetModified(true)
				changed = true
			}
		}
	}
	if !changed {
		slog.Debug("no match in any map", "op", op, "item", ref.String())
	}
	return changed
}

// memberOf returns the member of u corresponding to ref.
func memberOf(u *fixture.Unit, ref fixture.Fixture) fixture.Fixture {
	for _, member := range u.Members {
		if sameItem(member, ref) {
			return member
		}
	}
	return nil
}

func memberRank(f fixture.Fixture) int {
	switch f.(type) {
	case *fixture.Worker:
		return 0
	case *fixture.Immortal:
		return 1
	case *fixture.Animal:
		return 2
	case *fixture.ResourcePile:
		return 3
	default:
		return 4
	}
}

func memberLabel(f fixture.Fixture) string {
	if name, ok := fixture.NameOf(f); ok {
		return name
	}
	kind, _ := fixture.KindOf(f)
	return kind
}

func compareMembers(a, b fixture.Fixture) int {
	return cmp.Or(
		cmp.Compare(memberRank(a), memberRank(b)),
		cmp.Compare(memberLabel(a), memberLabel(b)),
		cmp.Compare(a.FixtureID(), b.FixtureID()),
	)
}
