// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGameVersion(t *testing.T) {
	tests := []struct {
		version uint64
		want    string
	}{
		{DefaultVersion, "0.18.0.0"},
		{281479276134400, "1.1.68.0"},
		{0, "0.0.0.0"},
		{1<<48 | 2<<32 | 3<<16 | 4, "1.2.3.4"},
	}
	for _, tt := range tests {
		if got := FormatGameVersion(tt.version); got != tt.want {
			t.Errorf("FormatGameVersion(%d) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestDocumentDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantItem string
	}{
		{"blueprint", `{"blueprint":{}}`, DefaultBlueprintItem},
		{"book", `{"blueprint_book":{}}`, DefaultBlueprintBookItem},
		{"deconstruction planner", `{"deconstruction_planner":{}}`, DefaultDeconstructionPlannerItem},
		{"upgrade planner", `{"upgrade_planner":{}}`, DefaultUpgradePlannerItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := Unmarshal([]byte(tt.input))
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			var item string
			var version uint64
			switch {
			case container.Blueprint != nil:
				item, version = container.Blueprint.Item, container.Blueprint.Version
			case container.BlueprintBook != nil:
				item, version = container.BlueprintBook.Item, container.BlueprintBook.Version
			case container.DeconstructionPlanner != nil:
				item, version = container.DeconstructionPlanner.Item, container.DeconstructionPlanner.Version
			case container.UpgradePlanner != nil:
				item, version = container.UpgradePlanner.Item, container.UpgradePlanner.Version
			}
			if item != tt.wantItem {
				t.Errorf("item = %q, want %q", item, tt.wantItem)
			}
			if version != DefaultVersion {
				t.Errorf("version = %d, want %d", version, DefaultVersion)
			}
		})
	}
}

func TestDocumentExplicitValuesOverrideDefaults(t *testing.T) {
	container, err := Unmarshal([]byte(`{"blueprint":{"item":"blueprint","version":281479276134400,"label":"x"}}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if container.Blueprint.Version != 281479276134400 {
		t.Errorf("version = %d", container.Blueprint.Version)
	}
	if container.Label() != "x" {
		t.Errorf("label = %q", container.Label())
	}
}

func TestBlueprintKebabCaseKeys(t *testing.T) {
	blueprint := NewBlueprint()
	blueprint.SnapToGrid = Ptr(NewPosition(4, 4))
	blueprint.AbsoluteSnapping = Ptr(true)
	blueprint.PositionRelativeToGrid = Ptr(NewPosition(1, 0))
	blueprint.LabelColor = &Color{R: MustReal(1), G: MustReal(0.5), B: MustReal(0), A: MustReal(1)}

	payload, err := Marshal(NewBlueprintContainer(blueprint))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{`"snap-to-grid":{"x":4,"y":4}`, `"absolute-snapping":true`,
		`"position-relative-to-grid":{"x":1,"y":0}`, `"label_color":{`} {
		if !strings.Contains(string(payload), key) {
			t.Errorf("payload %s lacks %s", payload, key)
		}
	}

	decoded, err := Unmarshal(payload)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Blueprint.SnapToGrid == nil || *decoded.Blueprint.SnapToGrid != NewPosition(4, 4) {
		t.Errorf("snap-to-grid = %v", decoded.Blueprint.SnapToGrid)
	}
	if decoded.Blueprint.AbsoluteSnapping == nil || !*decoded.Blueprint.AbsoluteSnapping {
		t.Error("absolute-snapping lost")
	}
}

func TestBlueprintOmitsUnsetFields(t *testing.T) {
	payload, err := Marshal(NewBlueprintContainer(NewBlueprint()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"blueprint":{"item":"blueprint","version":77310525440}}`
	if string(payload) != want {
		t.Errorf("payload = %s, want %s", payload, want)
	}
}

func TestBookEntryFlattensIndex(t *testing.T) {
	book := NewBlueprintBook()
	book.Blueprints = []BookEntry{
		{Index: 0, Container: NewBlueprintContainer(NewBlueprint())},
		{Index: 3, Container: NewUpgradePlannerContainer(NewUpgradePlanner())},
	}
	payload, err := Marshal(NewBookContainer(book))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, entry := range []string{
		`{"index":0,"blueprint":{"item":"blueprint","version":77310525440}}`,
		`{"index":3,"upgrade_planner":{"item":"upgrade_planner","version":77310525440}}`,
	} {
		if !strings.Contains(string(payload), entry) {
			t.Errorf("payload %s lacks entry %s", payload, entry)
		}
	}

	decoded, err := Unmarshal(payload)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	entries := decoded.BlueprintBook.Blueprints
	if len(entries) != 2 || entries[1].Index != 3 || entries[1].Kind() != KindUpgradePlanner {
		t.Errorf("entries = %+v", entries)
	}
}

func TestBookEntryErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no document", `{"index":0}`},
		{"two documents", `{"index":0,"blueprint":{},"upgrade_planner":{}}`},
		{"unknown document", `{"index":0,"schematic":{}}`},
		{"null document", `{"index":0,"blueprint":null}`},
		{"negative index", `{"index":-1,"blueprint":{}}`},
		{"not an object", `[0]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry BookEntry
			if err := json.Unmarshal([]byte(tt.input), &entry); err == nil {
				t.Errorf("Unmarshal(%s) succeeded", tt.input)
			}
		})
	}
}

func TestPlannerNullSettingsReadAsAbsent(t *testing.T) {
	container, err := Unmarshal([]byte(`{"deconstruction_planner":{"settings":null,"item":"deconstruction-planner","version":281479276134400}}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if container.DeconstructionPlanner.Settings != nil {
		t.Error("null settings decoded as a value")
	}
	payload, err := Marshal(container)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(payload), "settings") {
		t.Errorf("payload %s still mentions settings", payload)
	}
}

func TestScheduleWritesEmptyLists(t *testing.T) {
	got, err := json.Marshal(Schedule{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"schedule":[],"locomotives":[]}` {
		t.Errorf("Marshal = %s", got)
	}
}

func TestInventoryWritesEmptyFilters(t *testing.T) {
	got, err := json.Marshal(Inventory{Bar: Ptr[uint16](4)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"filters":[],"bar":4}` {
		t.Errorf("Marshal = %s", got)
	}
}

func TestSimpleEntityOptionalName(t *testing.T) {
	var signal SimpleEntity
	if err := json.Unmarshal([]byte(`{"type":"item"}`), &signal); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if signal.Name != nil {
		t.Errorf("name = %q, want unset", *signal.Name)
	}
	got, err := json.Marshal(signal)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"type":"item"}` {
		t.Errorf("Marshal = %s", got)
	}
}
