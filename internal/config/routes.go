package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/awardscan/award-scraper/internal/domain"
)

// routesFile is the on-disk shape of the routes configuration.
type routesFile struct {
	// DefaultPrograms applies to every route that lists none of its own.
	DefaultPrograms []string `json:"default_programs"`

	Routes []routeEntry `json:"routes" validate:"required,min=1,dive"`
}

type routeEntry struct {
	Origin      string   `json:"origin" validate:"required,len=3,alpha"`
	Destination string   `json:"destination" validate:"required,len=3,alpha"`
	Programs    []string `json:"programs"`

	// Active defaults to true when omitted.
	Active *bool `json:"active"`
}

// LoadRoutes reads and validates the routes file, applying program defaults
// and normalizing airport codes to upper case.
func LoadRoutes(path string) ([]domain.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routes file: %w", err)
	}

	var file routesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode routes file: %w", err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate routes file: %w", err)
	}

	routes := make([]domain.Route, 0, len(file.Routes))
	for i, entry := range file.Routes {
		programs := entry.Programs
		if len(programs) == 0 {
			programs = file.DefaultPrograms
		}
		if len(programs) == 0 {
			return nil, fmt.Errorf("route %d (%s-%s): no programs configured and no default_programs",
				i, entry.Origin, entry.Destination)
		}

		active := true
		if entry.Active != nil {
			active = *entry.Active
		}

		routes = append(routes, domain.Route{
			Origin:      strings.ToUpper(entry.Origin),
			Destination: strings.ToUpper(entry.Destination),
			Programs:    programs,
			Active:      active,
		})
	}

	return routes, nil
}
