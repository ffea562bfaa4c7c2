package board

import (
	"fmt"
	"strings"
)

// Resource is a raw material that can occupy a cell or be stored in a building.
type Resource uint8

const (
	Brick Resource = iota
	Glass
	Stone
	Wheat
	Wood
)

// NumResources is the number of resource kinds.
const NumResources = 5

var resourceNames = [NumResources]string{"brick", "glass", "stone", "wheat", "wood"}

func (r Resource) String() string {
	if int(r) < NumResources {
		return resourceNames[r]
	}
	return fmt.Sprintf("Resource(%d)", uint8(r))
}

// ParseResource resolves a resource by its lower-case name.
func ParseResource(name string) (Resource, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}
