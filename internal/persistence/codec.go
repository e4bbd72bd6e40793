package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/talgya/expedition/internal/fixture"
)

// envelope is the stored form of a fixture: a variant tag, the variant's
// own JSON, and the encoded contents of units and fortresses.
type envelope struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Members []envelope      `json:"members,omitempty"`
}

var constructors = map[string]func() fixture.Fixture{
	"animal":   func() fixture.Fixture { return &fixture.Animal{} },
	"tracks":   func() fixture.Fixture { return &fixture.AnimalTracks{} },
	"immortal": func() fixture.Fixture { return &fixture.Immortal{} },
	"grove":    func() fixture.Fixture { return &fixture.Grove{} },
	"meadow":   func() fixture.Fixture { return &fixture.Meadow{} },
	"shrub":    func() fixture.Fixture { return &fixture.Shrub{} },
	"forest":   func() fixture.Fixture { return &fixture.Forest{} },
	"hill":     func() fixture.Fixture { return &fixture.Hill{} },
	"ground":   func() fixture.Fixture { return &fixture.Ground{} },
	"vein":     func() fixture.Fixture { return &fixture.MineralVein{} },
	"mine":     func() fixture.Fixture { return &fixture.Mine{} },
	"village":  func() fixture.Fixture { return &fixture.Village{} },
	"town":     func() fixture.Fixture { return &fixture.Town{} },
	"fortress": func() fixture.Fixture { return &fixture.Fortress{} },
	"unit":     func() fixture.Fixture { return &fixture.Unit{} },
	"worker":   func() fixture.Fixture { return &fixture.Worker{} },
	"resource": func() fixture.Fixture { return &fixture.ResourcePile{} },
	"cache":    func() fixture.Fixture { return &fixture.Cache{} },
}

func tagOf(f fixture.Fixture) (string, bool) {
	switch f.(type) {
	case *fixture.Animal:
		return "animal", true
	case *fixture.AnimalTracks:
		return "tracks", true
	case *fixture.Immortal:
		return "immortal", true
	case *fixture.Grove:
		return "grove", true
	case *fixture.Meadow:
		return "meadow", true
	case *fixture.Shrub:
		return "shrub", true
	case *fixture.Forest:
		return "forest", true
	case *fixture.Hill:
		return "hill", true
	case *fixture.Ground:
		return "ground", true
	case *fixture.MineralVein:
		return "vein", true
	case *fixture.Mine:
		return "mine", true
	case *fixture.Village:
		return "village", true
	case *fixture.Town:
		return "town", true
	case *fixture.Fortress:
		return "fortress", true
	case *fixture.Unit:
		return "unit", true
	case *fixture.Worker:
		return "worker", true
	case *fixture.ResourcePile:
		return "resource", true
	case *fixture.Cache:
		return "cache", true
	default:
		return "", false
	}
}

func encodeFixture(f fixture.Fixture) (envelope, error) {
	tag, ok := tagOf(f)
	if !ok {
		return envelope{}, fmt.Errorf("%w: %T", ErrUnknownFixture, f)
	}
	data, err := json.Marshal(f)
	if err != nil {
		return envelope{}, fmt.Errorf("marshal %s %d: %w", tag, f.FixtureID(), err)
	}
	env := envelope{Type: tag, Data: data}
	contents, _ := fixture.Contents(f)
	for _, member := range contents {
		child, err := encodeFixture(member)
		if err != nil {
			return envelope{}, err
		}
		env.Members = append(env.Members, child)
	}
	return env, nil
}

func decodeFixture(env envelope) (fixture.Fixture, error) {
	ctor, ok := constructors[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, env.Type)
	}
	f := ctor()
	if err := json.Unmarshal(env.Data, f); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", env.Type, err)
	}
	for _, childEnv := range env.Members {
		child, err := decodeFixture(childEnv)
		if err != nil {
			return nil, err
		}
		switch v := f.(type) {
		case *fixture.Unit:
			v.AddMember(child)
		case *fixture.Fortress:
			v.AddMember(child)
		default:
			return nil, fmt.Errorf("%s cannot hold members", env.Type)
		}
	}
	return f, nil
}
