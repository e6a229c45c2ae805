// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultVersion is the map version written into new documents when
// none is given: game version 0.18.0.0, packed as four 16-bit fields
// (major, minor, patch, build) into a uint64.
const DefaultVersion uint64 = 77310525440

// Item names used as defaults when a document omits its "item" field.
const (
	DefaultBlueprintItem             = "blueprint"
	DefaultBlueprintBookItem         = "blueprint-book"
	DefaultDeconstructionPlannerItem = "deconstruction_planner"
	DefaultUpgradePlannerItem        = "upgrade_planner"
)

// GameVersion splits a packed map version into its four components.
func GameVersion(version uint64) (major, minor, patch, build uint16) {
	return uint16(version >> 48), uint16(version >> 32), uint16(version >> 16), uint16(version)
}

// FormatGameVersion renders a packed map version as
// "major.minor.patch.build".
func FormatGameVersion(version uint64) string {
	major, minor, patch, build := GameVersion(version)
	return strconv.Itoa(int(major)) + "." + strconv.Itoa(int(minor)) + "." +
		strconv.Itoa(int(patch)) + "." + strconv.Itoa(int(build))
}

// --- Blueprint ---

// Blueprint is a single saved layout of entities and tiles.
//
// The game names three of its keys in kebab-case ("snap-to-grid",
// "absolute-snapping", "position-relative-to-grid") and the rest in
// snake_case; the tags below reproduce that mix exactly.
type Blueprint struct {
	Item        string  `json:"item"`
	Label       *string `json:"label,omitempty"`
	LabelColor  *Color  `json:"label_color,omitempty"`
	Description *string `json:"description,omitempty"`

	Entities  []Entity   `json:"entities,omitempty"`
	Tiles     []Tile     `json:"tiles,omitempty"`
	Icons     []Icon     `json:"icons,omitempty"`
	Schedules []Schedule `json:"schedules,omitempty"`

	SnapToGrid             *Position `json:"snap-to-grid,omitempty"`
	AbsoluteSnapping       *bool     `json:"absolute-snapping,omitempty"`
	PositionRelativeToGrid *Position `json:"position-relative-to-grid,omitempty"`

	Version uint64 `json:"version"`
}

// NewBlueprint returns an empty blueprint with the default item name
// and version.
func NewBlueprint() Blueprint {
	return Blueprint{Item: DefaultBlueprintItem, Version: DefaultVersion}
}

// UnmarshalJSON decodes a blueprint. Every field is optional; a
// missing item or version takes the default.
func (b *Blueprint) UnmarshalJSON(data []byte) error {
	type plain Blueprint
	decoded := plain(NewBlueprint())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = Blueprint(decoded)
	return nil
}

// --- Blueprint book ---

// BlueprintBook is an ordered collection of other documents. Entries
// may themselves be books.
type BlueprintBook struct {
	Item        string      `json:"item"`
	Label       *string     `json:"label,omitempty"`
	LabelColor  *Color      `json:"label_color,omitempty"`
	Description *string     `json:"description,omitempty"`
	Blueprints  []BookEntry `json:"blueprints,omitempty"`
	Icons       []Icon      `json:"icons,omitempty"`
	// ActiveIndex is the zero-based slot selected in game.
	ActiveIndex uint64 `json:"active_index"`
	Version     uint64 `json:"version"`
}

// NewBlueprintBook returns an empty book with the default item name
// and version.
func NewBlueprintBook() BlueprintBook {
	return BlueprintBook{Item: DefaultBlueprintBookItem, Version: DefaultVersion}
}

// UnmarshalJSON decodes a book. Every field is optional; a missing
// item or version takes the default.
func (b *BlueprintBook) UnmarshalJSON(data []byte) error {
	type plain BlueprintBook
	decoded := plain(NewBlueprintBook())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = BlueprintBook(decoded)
	return nil
}

// BookEntry is one slot of a blueprint book: a zero-based slot index
// and the document stored there. On the wire the two are flattened
// into one object, {"index": 0, "blueprint": {...}}.
type BookEntry struct {
	Index uint64
	Container
}

func (e BookEntry) MarshalJSON() ([]byte, error) {
	container, err := e.Container.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("book entry %d: %w", e.Index, err)
	}
	// container is a one-key object; splice the index in ahead of it.
	entry := make([]byte, 0, len(container)+32)
	entry = append(entry, `{"index":`...)
	entry = strconv.AppendUint(entry, e.Index, 10)
	entry = append(entry, ',')
	entry = append(entry, container[1:]...)
	return entry, nil
}

func (e *BookEntry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("book entry: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("book entry: expected an object, got null")
	}
	index, ok := raw["index"]
	if !ok || isNull(index) {
		return &MissingFieldError{Object: "book entry", Field: "index"}
	}
	var entry BookEntry
	if err := json.Unmarshal(index, &entry.Index); err != nil {
		return fmt.Errorf("book entry index: %w", err)
	}
	delete(raw, "index")
	container, err := containerFromFields(raw)
	if err != nil {
		return fmt.Errorf("book entry %d: %w", entry.Index, err)
	}
	entry.Container = container
	*e = entry
	return nil
}

// --- Deconstruction planner ---

// DeconstructionPlanner is a saved deconstruction planner.
type DeconstructionPlanner struct {
	Item     string                  `json:"item"`
	Label    *string                 `json:"label,omitempty"`
	Settings *DeconstructionSettings `json:"settings,omitempty"`
	Version  uint64                  `json:"version"`
}

// NewDeconstructionPlanner returns a planner with the default item
// name and version and no settings.
func NewDeconstructionPlanner() DeconstructionPlanner {
	return DeconstructionPlanner{Item: DefaultDeconstructionPlannerItem, Version: DefaultVersion}
}

// UnmarshalJSON decodes a planner. Every field is optional; a missing
// item or version takes the default and an explicit null settings
// object reads as absent.
func (p *DeconstructionPlanner) UnmarshalJSON(data []byte) error {
	type plain DeconstructionPlanner
	decoded := plain(NewDeconstructionPlanner())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = DeconstructionPlanner(decoded)
	return nil
}

// DeconstructionSettings is the filter configuration of a
// deconstruction planner.
type DeconstructionSettings struct {
	Description       *string                   `json:"description,omitempty"`
	Icons             []Icon                    `json:"icons,omitempty"`
	EntityFilters     []DeconstructionFilter    `json:"entity_filters,omitempty"`
	EntityFilterMode  *DeconstructionFilterMode `json:"entity_filter_mode,omitempty"`
	TreesAndRocksOnly *bool                     `json:"trees_and_rocks_only,omitempty"`
	TileFilters       []DeconstructionFilter    `json:"tile_filters,omitempty"`
	TileSelectionMode *TileSelectionMode        `json:"tile_selection_mode,omitempty"`
}

// DeconstructionFilter names one entity or tile in a planner filter
// slot. Unlike most indices in the format, Index is zero-based.
type DeconstructionFilter struct {
	Index uint32 `json:"index"`
	Name  string `json:"name"`
}

func (f *DeconstructionFilter) UnmarshalJSON(data []byte) error {
	type plain DeconstructionFilter
	return decodeRequired(data, (*plain)(f), "deconstruction filter", "index", "name")
}

// --- Upgrade planner ---

// UpgradePlanner is a saved upgrade planner.
type UpgradePlanner struct {
	Item     string                  `json:"item"`
	Settings *UpgradePlannerSettings `json:"settings,omitempty"`
	Label    *string                 `json:"label,omitempty"`
	Version  uint64                  `json:"version"`
}

// NewUpgradePlanner returns a planner with the default item name and
// version and no settings.
func NewUpgradePlanner() UpgradePlanner {
	return UpgradePlanner{Item: DefaultUpgradePlannerItem, Version: DefaultVersion}
}

func (p *UpgradePlanner) UnmarshalJSON(data []byte) error {
	type plain UpgradePlanner
	decoded := plain(NewUpgradePlanner())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = UpgradePlanner(decoded)
	return nil
}

// UpgradePlannerSettings is the mapping configuration of an upgrade
// planner.
type UpgradePlannerSettings struct {
	Mappers     []Mapper `json:"mappers,omitempty"`
	Description *string  `json:"description,omitempty"`
	Icons       []Icon   `json:"icons,omitempty"`
}

// Mapper replaces one prototype with another in an upgrade planner
// slot. Index is zero-based.
type Mapper struct {
	From  *SimpleEntity `json:"from,omitempty"`
	To    *SimpleEntity `json:"to,omitempty"`
	Index uint32        `json:"index"`
}

func (m *Mapper) UnmarshalJSON(data []byte) error {
	type plain Mapper
	return decodeRequired(data, (*plain)(m), "mapper", "index")
}
