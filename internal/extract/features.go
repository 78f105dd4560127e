// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Feature column names derivable by the pipeline.
const (
	FeatureHasPhone        = "HasPhone"
	FeatureEmailDomain     = "EmailDomain"
	FeatureFirstNameLength = "FirstNameLength"
	FeatureLastNameLength  = "LastNameLength"
	FeatureIsInNY          = "IsInNY"
)

// featureDef describes one derivable feature: the source column it
// reads and the per-cell derivation.
type featureDef struct {
	name     string
	requires string
	derive   func(Cell) Cell
}

// featureDefs lists every known feature in derivation order. Output
// columns appear in this order regardless of configuration order.
var featureDefs = []featureDef{
	{
		name:     FeatureHasPhone,
		requires: "phone",
		derive: func(c Cell) Cell {
			return boolCell(!c.Missing)
		},
	},
	{
		name:     FeatureEmailDomain,
		requires: "email",
		derive: func(c Cell) Cell {
			if c.Missing {
				return missingCell()
			}
			parts := strings.Split(c.Value, "@")
			return stringCell(parts[len(parts)-1])
		},
	},
	{
		name:     FeatureFirstNameLength,
		requires: "first_name",
		derive: func(c Cell) Cell {
			if c.Missing {
				return missingCell()
			}
			return intCell(utf8.RuneCountInString(c.Value))
		},
	},
	{
		name:     FeatureLastNameLength,
		requires: "last_name",
		derive: func(c Cell) Cell {
			if c.Missing {
				return missingCell()
			}
			return intCell(utf8.RuneCountInString(c.Value))
		},
	},
	{
		name:     FeatureIsInNY,
		requires: "state",
		derive: func(c Cell) Cell {
			if c.Missing {
				return boolCell(false)
			}
			return boolCell(strings.ToUpper(c.Value) == "NY")
		},
	},
}

// KnownFeature reports whether name is a derivable feature.
func KnownFeature(name string) bool {
	for _, def := range featureDefs {
		if def.name == name {
			return true
		}
	}
	return false
}

// KnownFeatures returns every derivable feature name in derivation order.
func KnownFeatures() []string {
	names := make([]string, len(featureDefs))
	for i, def := range featureDefs {
		names[i] = def.name
	}
	return names
}

// deriveFeature computes the named feature column and appends it to
// the frame. The feature's source column must be present.
func deriveFeature(f *Frame, def featureDef) error {
	source, ok := f.Column(def.requires)
	if !ok {
		return fmt.Errorf("feature %s requires field %q", def.name, def.requires)
	}
	cells := make([]Cell, len(source))
	for i, c := range source {
		cells[i] = def.derive(c)
	}
	return f.AddColumn(def.name, cells)
}
