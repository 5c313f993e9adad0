package geocoder

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/metrics"
)

// buildingPart captures the building of a room code: the optional letter prefix and its number.
var buildingPart = regexp.MustCompile(`^([A-Z]{0,2})-?(\d+)`)

type directoryFile struct {
	Buildings map[string]domain.Coordinates `yaml:"buildings"`
}

// Directory resolves room and building codes against a static list of building coordinates.
type Directory struct {
	buildings map[string]domain.Coordinates
}

func NewDirectory(buildings map[string]domain.Coordinates) *Directory {
	normalized := make(map[string]domain.Coordinates, len(buildings))
	for code, coords := range buildings {
		normalized[BuildingKey(code)] = coords
	}
	return &Directory{buildings: normalized}
}

// LoadDirectory reads a YAML file of the form
//
//	buildings:
//	  E62: {lat: 42.3613, lon: -71.0829}
func LoadDirectory(path string) (*Directory, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building directory: %w", err)
	}

	var file directoryFile
	if err := yaml.UnmarshalStrict(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse building directory %s: %w", path, err)
	}

	log.WithFields(log.Fields{"path": path, "buildings": len(file.Buildings)}).Info("Building directory loaded")
	return NewDirectory(file.Buildings), nil
}

// Lookup never fails; unknown buildings yield nil coordinates.
func (d *Directory) Lookup(_ context.Context, location string) (*domain.Coordinates, error) {
	coords, ok := d.buildings[BuildingKey(location)]
	if !ok {
		metrics.GeocoderLookups.WithLabelValues("directory", "miss").Inc()
		return nil, nil
	}
	metrics.GeocoderLookups.WithLabelValues("directory", "hit").Inc()
	return &coords, nil
}

// BuildingKey reduces a room or building code to its building, e.g. "e62-250" and "E-62" to "E62".
func BuildingKey(location string) string {
	code := strings.ToUpper(strings.TrimSpace(location))
	m := buildingPart.FindStringSubmatch(code)
	if m == nil {
		return code
	}
	return m[1] + m[2]
}
