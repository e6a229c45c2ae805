// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

// nestedBook returns a book holding a blueprint, a planner, and an
// inner book with one blueprint of its own.
func nestedBook() Container {
	inner := NewBlueprintBook()
	inner.Label = Ptr("inner")
	inner.Blueprints = []BookEntry{
		{Index: 0, Container: NewBlueprintContainer(NewBlueprint())},
	}

	outer := NewBlueprintBook()
	outer.Label = Ptr("outer")
	outer.ActiveIndex = 2
	outer.Blueprints = []BookEntry{
		{Index: 0, Container: NewBlueprintContainer(NewBlueprint())},
		{Index: 1, Container: NewDeconstructionPlannerContainer(NewDeconstructionPlanner())},
		{Index: 2, Container: NewBookContainer(inner)},
	}
	return NewBookContainer(outer)
}

func TestContainerKind(t *testing.T) {
	tests := []struct {
		container Container
		want      ContainerKind
	}{
		{Container{}, KindNone},
		{NewBlueprintContainer(NewBlueprint()), KindBlueprint},
		{NewBookContainer(NewBlueprintBook()), KindBlueprintBook},
		{NewDeconstructionPlannerContainer(NewDeconstructionPlanner()), KindDeconstructionPlanner},
		{NewUpgradePlannerContainer(NewUpgradePlanner()), KindUpgradePlanner},
		{Container{Blueprint: &Blueprint{}, UpgradePlanner: &UpgradePlanner{}}, KindNone},
	}
	for _, tt := range tests {
		if got := tt.container.Kind(); got != tt.want {
			t.Errorf("Kind() = %q, want %q", got, tt.want)
		}
	}
}

func TestContainerUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no keys", `{}`, "want exactly one"},
		{"two keys", `{"blueprint":{},"blueprint_book":{}}`, "want exactly one"},
		{"unknown key", `{"schematic":{}}`, `unknown document kind "schematic"`},
		{"null document", `{"blueprint":null}`, "got null"},
		{"null container", `null`, "got null"},
		{"list", `[]`, "container"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			if err == nil {
				t.Fatalf("Unmarshal(%s) succeeded", tt.input)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestMarshalRejectsEmptyContainer(t *testing.T) {
	if _, err := Marshal(Container{}); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("err = %v, want ErrEmptyContainer", err)
	}
}

func TestValidateReportsNestedPath(t *testing.T) {
	container := nestedBook()
	inner := container.BlueprintBook.Blueprints[2].BlueprintBook
	inner.Blueprints = append(inner.Blueprints, BookEntry{Index: 5})

	err := container.Validate()
	if !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("err = %v, want ErrEmptyContainer", err)
	}
	if !strings.Contains(err.Error(), "book entry 2/5") {
		t.Errorf("err = %q, want the path 2/5", err)
	}
	if _, err := Marshal(container); err == nil {
		t.Error("Marshal accepted an invalid nested entry")
	}
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	var visited []string
	err := nestedBook().Walk(func(path []uint64, node Container) error {
		visited = append(visited, fmt.Sprintf("%v:%s", path, node.Kind()))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{
		"[]:blueprint_book",
		"[0]:blueprint",
		"[1]:deconstruction_planner",
		"[2]:blueprint_book",
		"[2 0]:blueprint",
	}
	if !slices.Equal(visited, want) {
		t.Errorf("visited %q, want %q", visited, want)
	}
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	err := nestedBook().Walk(func(path []uint64, node Container) error {
		visits++
		if node.Kind() == KindDeconstructionPlanner {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("err = %v, want stop", err)
	}
	if visits != 3 {
		t.Errorf("visits = %d, want 3", visits)
	}
}

func TestEqualIgnoresEmptyOptionalFields(t *testing.T) {
	withEmpty := NewBlueprint()
	withEmpty.Entities = []Entity{}
	withEmpty.Tiles = []Tile{}

	if !Equal(NewBlueprintContainer(NewBlueprint()), NewBlueprintContainer(withEmpty)) {
		t.Error("empty lists compare different from absent lists")
	}

	labeled := NewBlueprint()
	labeled.Label = Ptr("different")
	if Equal(NewBlueprintContainer(NewBlueprint()), NewBlueprintContainer(labeled)) {
		t.Error("documents with different labels compare equal")
	}
	if Equal(Container{}, Container{}) {
		t.Error("empty containers compare equal")
	}
}

func TestCanonicalSortsKeys(t *testing.T) {
	blueprint := NewBlueprint()
	blueprint.Label = Ptr("a<b")
	blueprint.Entities = []Entity{NewEntity(1, "wooden-chest", NewPosition(0.5, 0.5))}

	canonical, err := Canonical(NewBlueprintContainer(blueprint))
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	want := `{"blueprint":{"entities":[{"entity_number":1,"name":"wooden-chest","position":{"x":0.5,"y":0.5}}],` +
		`"item":"blueprint","label":"a<b","version":77310525440}}`
	if string(canonical) != want {
		t.Errorf("Canonical =\n%s\nwant\n%s", canonical, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := nestedBook()
	clone, err := original.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if !Equal(original, clone) {
		t.Fatal("clone differs from original")
	}

	clone.BlueprintBook.Blueprints[2].BlueprintBook.Label = Ptr("changed")
	if original.BlueprintBook.Blueprints[2].Label() != "inner" {
		t.Error("changing the clone changed the original")
	}

	if _, err := (Container{}).Clone(); err == nil {
		t.Error("cloning an empty container succeeded")
	}
}

func TestContainerLabel(t *testing.T) {
	planner := NewUpgradePlanner()
	planner.Label = Ptr("upgrades")
	if got := NewUpgradePlannerContainer(planner).Label(); got != "upgrades" {
		t.Errorf("Label() = %q", got)
	}
	if got := NewBlueprintContainer(NewBlueprint()).Label(); got != "" {
		t.Errorf("Label() of an unlabeled blueprint = %q", got)
	}
	if got := (Container{}).Label(); got != "" {
		t.Errorf("Label() of an empty container = %q", got)
	}
}

func TestContainerVersion(t *testing.T) {
	planner := NewDeconstructionPlanner()
	planner.Version = 281479276134400
	if got := NewDeconstructionPlannerContainer(planner).Version(); got != 281479276134400 {
		t.Errorf("Version() = %d", got)
	}
	if got := NewBookContainer(NewBlueprintBook()).Version(); got != DefaultVersion {
		t.Errorf("Version() of a new book = %d, want %d", got, DefaultVersion)
	}
	if got := (Container{}).Version(); got != 0 {
		t.Errorf("Version() of an empty container = %d", got)
	}
}
