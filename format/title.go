package format

import (
	"fmt"
	"strings"
)

// Title is one of the supported games
type Title int

// Supported titles
const (
	Caesar3 Title = iota
	Pharaoh
	Zeus
)

type titleInfo struct {
	name       string
	aliases    []string
	mapSize    int
	walkers    int
	buildings  int
	extensions []string
}

var titles = map[Title]titleInfo{
	Caesar3: {
		name:       "caesar3",
		aliases:    []string{"c3", "caesar"},
		mapSize:    162,
		walkers:    1000,
		extensions: []string{".map", ".sav"},
	},
	Pharaoh: {
		name:       "pharaoh",
		aliases:    []string{"cleopatra"},
		mapSize:    228,
		walkers:    2000,
		buildings:  4000,
		extensions: []string{".map", ".sav"},
	},
	Zeus: {
		name:       "zeus",
		aliases:    []string{"poseidon"},
		mapSize:    228,
		walkers:    2000,
		buildings:  4000,
		extensions: []string{".map", ".sav", ".pak"},
	},
}

func (t Title) String() string {
	if info, ok := titles[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Title(%d)", int(t))
}

// MaxMapSize returns the side length of every grid stored by the title
func (t Title) MaxMapSize() int {
	return titles[t].mapSize
}

// MaxWalkers returns the number of walker slots in a saved game
func (t Title) MaxWalkers() int {
	return titles[t].walkers
}

// MaxBuildings returns the number of building slots in a saved game, zero
// if the title doesn't store a building table
func (t Title) MaxBuildings() int {
	return titles[t].buildings
}

// Extensions returns the file extensions used by the title, lower case and
// including the leading dot
func (t Title) Extensions() []string {
	return titles[t].extensions
}

// ParseTitle returns the title matching s, case insensitive
func ParseTitle(s string) (Title, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, info := range titles {
		if s == info.name {
			return t, nil
		}
		for _, alias := range info.aliases {
			if s == alias {
				return t, nil
			}
		}
	}
	return 0, fmt.Errorf("format: unknown title %q", s)
}

// Kind is the type of input file
type Kind int

// Kinds of input file
const (
	Scenario Kind = iota
	SavedGame
	Adventure
)

func (k Kind) String() string {
	switch k {
	case Scenario:
		return "scenario"
	case SavedGame:
		return "saved game"
	case Adventure:
		return "adventure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Climate selects the Caesar 3 palette. The values match those stored in
// the files.
type Climate int

// Climates
const (
	Central Climate = iota
	Northern
	Desert
)

func (c Climate) String() string {
	switch c {
	case Central:
		return "central"
	case Northern:
		return "northern"
	case Desert:
		return "desert"
	default:
		return fmt.Sprintf("Climate(%d)", int(c))
	}
}
