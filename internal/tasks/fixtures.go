package tasks

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/mags/internal/models"
	"github.com/desertthunder/mags/internal/shared"
)

//go:embed fixtures.toml
var defaultFixture []byte

// Fixture is the sample data used by [Seeder].
//
// Authors and magazines are kept as loosely typed records so that type mistakes in hand-edited files are reported
// as [shared.ErrInvalidType] by the model decoders.
type Fixture struct {
	Authors   []models.Record `toml:"authors"`
	Magazines []models.Record `toml:"magazines"`
	Titles    []string        `toml:"titles"`
	Contents  []string        `toml:"contents"`
}

// LoadFixture reads a fixture from path, or the embedded default when path is empty.
func LoadFixture(path string) (*Fixture, error) {
	data := defaultFixture
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read fixture file: %w", err)
		}
	}
	return ParseFixture(data)
}

// ParseFixture decodes and checks a TOML fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	switch {
	case len(f.Authors) == 0:
		return nil, fmt.Errorf("%w: fixture has no authors", shared.ErrInvalidConfig)
	case len(f.Magazines) == 0:
		return nil, fmt.Errorf("%w: fixture has no magazines", shared.ErrInvalidConfig)
	case len(f.Titles) == 0:
		return nil, fmt.Errorf("%w: fixture has no titles", shared.ErrInvalidConfig)
	case len(f.Contents) == 0:
		return nil, fmt.Errorf("%w: fixture has no contents", shared.ErrInvalidConfig)
	}

	return &f, nil
}

// fixtureRecord rejects records that carry an id, since ids are assigned on insert.
func fixtureRecord(r models.Record, kind string, i int) error {
	id, err := r.ID()
	if err != nil {
		return fmt.Errorf("%s %d: %w", kind, i+1, err)
	}
	if id != 0 {
		return fmt.Errorf("%w: %s %d sets an id", shared.ErrInvalidValue, kind, i+1)
	}
	return nil
}
