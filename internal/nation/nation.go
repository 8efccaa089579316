// Package nation holds the placeholder country data. None of it is
// simulated yet; the headless report lists the roster and the HUD may show
// it, nothing more.
package nation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Country identifies a map region owner.
type Country struct {
	ID uint32 `yaml:"id"`
}

// Nation is a country's display identity.
type Nation struct {
	Name string `yaml:"name"`
}

// Policy weights each ideology, conventionally in [0,1].
type Policy struct {
	Democracy   float64 `yaml:"democracy"`
	Monarchy    float64 `yaml:"monarchy"`
	Nationalism float64 `yaml:"nationalism"`
	Communism   float64 `yaml:"communism"`
}

// GovernmentType is the form of government.
type GovernmentType int

const (
	Democracy GovernmentType = iota
	Monarchy
	Nationalism
	Communism
)

func (g GovernmentType) String() string {
	switch g {
	case Democracy:
		return "democracy"
	case Monarchy:
		return "monarchy"
	case Nationalism:
		return "nationalism"
	case Communism:
		return "communism"
	}
	return fmt.Sprintf("government(%d)", int(g))
}

// Dominant returns the ideology with the highest weight. Ties resolve in
// declaration order.
func (p Policy) Dominant() GovernmentType {
	best, w := Democracy, p.Democracy
	for _, c := range []struct {
		kind GovernmentType
		w    float64
	}{
		{Monarchy, p.Monarchy},
		{Nationalism, p.Nationalism},
		{Communism, p.Communism},
	} {
		if c.w > w {
			best, w = c.kind, c.w
		}
	}
	return best
}

// Government is a country's current regime.
type Government struct {
	Kind GovernmentType
}

// Entry is one country in a roster file.
type Entry struct {
	Country `yaml:",inline"`
	Nation  `yaml:",inline"`
	Policy  Policy `yaml:"policy"`
}

// Government derives the regime from the entry's policy.
func (e Entry) Government() Government {
	return Government{Kind: e.Policy.Dominant()}
}

// Roster is the list of playable countries.
type Roster struct {
	Countries []Entry `yaml:"countries"`
}

// ParseRoster decodes a YAML roster.
func ParseRoster(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parse roster: %w", err)
	}
	return r, nil
}

// LoadRoster reads a YAML roster from path.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster %s: %w", path, err)
	}
	return ParseRoster(data)
}
