// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// SignalType is the category of a [SignalID].
type SignalType string

const (
	SignalTypeItem    SignalType = "item"
	SignalTypeFluid   SignalType = "fluid"
	SignalTypeVirtual SignalType = "virtual"
)

var signalTypes = stringEnum[SignalType]{
	name:   "signal type",
	values: []SignalType{SignalTypeItem, SignalTypeFluid, SignalTypeVirtual},
}

func (t SignalType) MarshalJSON() ([]byte, error)     { return signalTypes.marshal(t) }
func (t *SignalType) UnmarshalJSON(data []byte) error { return signalTypes.unmarshal(data, t) }

// EntityType distinguishes the two halves of an underground belt and
// the mode of a loader.
type EntityType string

const (
	EntityTypeInput  EntityType = "input"
	EntityTypeOutput EntityType = "output"
	EntityTypeItem   EntityType = "item"
)

var entityTypes = stringEnum[EntityType]{
	name:   "entity type",
	values: []EntityType{EntityTypeInput, EntityTypeOutput, EntityTypeItem},
}

func (t EntityType) MarshalJSON() ([]byte, error)     { return entityTypes.marshal(t) }
func (t *EntityType) UnmarshalJSON(data []byte) error { return entityTypes.unmarshal(data, t) }

// EntityPriority is a splitter input or output priority side.
type EntityPriority string

const (
	EntityPriorityLeft  EntityPriority = "left"
	EntityPriorityRight EntityPriority = "right"
)

var entityPriorities = stringEnum[EntityPriority]{
	name:   "entity priority",
	values: []EntityPriority{EntityPriorityLeft, EntityPriorityRight},
}

func (p EntityPriority) MarshalJSON() ([]byte, error)     { return entityPriorities.marshal(p) }
func (p *EntityPriority) UnmarshalJSON(data []byte) error { return entityPriorities.unmarshal(data, p) }

// EntityFilterMode selects whether an entity's filters allow or deny.
type EntityFilterMode string

const (
	EntityFilterModeWhitelist EntityFilterMode = "whitelist"
	EntityFilterModeBlacklist EntityFilterMode = "blacklist"
)

var entityFilterModes = stringEnum[EntityFilterMode]{
	name:   "entity filter mode",
	values: []EntityFilterMode{EntityFilterModeWhitelist, EntityFilterModeBlacklist},
}

func (m EntityFilterMode) MarshalJSON() ([]byte, error)     { return entityFilterModes.marshal(m) }
func (m *EntityFilterMode) UnmarshalJSON(data []byte) error { return entityFilterModes.unmarshal(data, m) }

// WaitConditionType is the kind of a train schedule wait condition.
type WaitConditionType string

const (
	WaitConditionTime                WaitConditionType = "time"
	WaitConditionInactivity          WaitConditionType = "inactivity"
	WaitConditionFull                WaitConditionType = "full"
	WaitConditionEmpty               WaitConditionType = "empty"
	WaitConditionItemCount           WaitConditionType = "item_count"
	WaitConditionCircuit             WaitConditionType = "circuit"
	WaitConditionRobotsInactive      WaitConditionType = "robots_inactive"
	WaitConditionFluidCount          WaitConditionType = "fluid_count"
	WaitConditionPassengerPresent    WaitConditionType = "passenger_present"
	WaitConditionPassengerNotPresent WaitConditionType = "passenger_not_present"
)

var waitConditionTypes = stringEnum[WaitConditionType]{
	name: "wait condition type",
	values: []WaitConditionType{
		WaitConditionTime,
		WaitConditionInactivity,
		WaitConditionFull,
		WaitConditionEmpty,
		WaitConditionItemCount,
		WaitConditionCircuit,
		WaitConditionRobotsInactive,
		WaitConditionFluidCount,
		WaitConditionPassengerPresent,
		WaitConditionPassengerNotPresent,
	},
}

func (t WaitConditionType) MarshalJSON() ([]byte, error) { return waitConditionTypes.marshal(t) }
func (t *WaitConditionType) UnmarshalJSON(data []byte) error {
	return waitConditionTypes.unmarshal(data, t)
}

// CompareType joins a wait condition to the one before it.
type CompareType string

const (
	CompareAnd CompareType = "and"
	CompareOr  CompareType = "or"
)

var compareTypes = stringEnum[CompareType]{
	name:   "compare type",
	values: []CompareType{CompareAnd, CompareOr},
}

func (t CompareType) MarshalJSON() ([]byte, error)     { return compareTypes.marshal(t) }
func (t *CompareType) UnmarshalJSON(data []byte) error { return compareTypes.unmarshal(data, t) }

// InfinityFilterMode is how an infinity chest or pipe holds a count.
// Note the kebab-case wire values.
type InfinityFilterMode string

const (
	InfinityFilterAtLeast InfinityFilterMode = "at-least"
	InfinityFilterAtMost  InfinityFilterMode = "at-most"
	InfinityFilterExactly InfinityFilterMode = "exactly"
)

var infinityFilterModes = stringEnum[InfinityFilterMode]{
	name:   "infinity filter mode",
	values: []InfinityFilterMode{InfinityFilterAtLeast, InfinityFilterAtMost, InfinityFilterExactly},
}

func (m InfinityFilterMode) MarshalJSON() ([]byte, error) { return infinityFilterModes.marshal(m) }
func (m *InfinityFilterMode) UnmarshalJSON(data []byte) error {
	return infinityFilterModes.unmarshal(data, m)
}

// --- Integer enumerations ---

// DeconstructionFilterMode selects whether a deconstruction planner's
// entity filters allow or deny.
type DeconstructionFilterMode uint32

const (
	DeconstructionWhitelist DeconstructionFilterMode = 0
	DeconstructionBlacklist DeconstructionFilterMode = 1
)

var deconstructionFilterModes = intEnum[DeconstructionFilterMode]{
	name:   "deconstruction filter mode",
	values: []DeconstructionFilterMode{DeconstructionWhitelist, DeconstructionBlacklist},
}

func (m DeconstructionFilterMode) MarshalJSON() ([]byte, error) {
	return deconstructionFilterModes.marshal(m)
}
func (m *DeconstructionFilterMode) UnmarshalJSON(data []byte) error {
	return deconstructionFilterModes.unmarshal(data, m)
}

// TileSelectionMode controls which tiles a deconstruction planner
// marks.
type TileSelectionMode uint32

const (
	TileSelectionNormal TileSelectionMode = 0
	TileSelectionAlways TileSelectionMode = 1
	TileSelectionNever  TileSelectionMode = 2
	TileSelectionOnly   TileSelectionMode = 3
)

var tileSelectionModes = intEnum[TileSelectionMode]{
	name: "tile selection mode",
	values: []TileSelectionMode{
		TileSelectionNormal, TileSelectionAlways, TileSelectionNever, TileSelectionOnly,
	},
}

func (m TileSelectionMode) MarshalJSON() ([]byte, error)     { return tileSelectionModes.marshal(m) }
func (m *TileSelectionMode) UnmarshalJSON(data []byte) error { return tileSelectionModes.unmarshal(data, m) }

// CircuitModeOfOperation is an entity's circuit-network mode. The
// numbers are reused across entity kinds, so a value's meaning depends
// on the entity it is attached to.
type CircuitModeOfOperation uint32

const (
	// CircuitModeRoboport appears on roboports and power poles in
	// exported books. What it selects is not established.
	CircuitModeRoboport CircuitModeOfOperation = 0
	// CircuitModeSetRequests makes a requester chest take its requests
	// from the circuit network.
	CircuitModeSetRequests CircuitModeOfOperation = 1
	// CircuitModeTwo is accepted and preserved, but what it selects is
	// not established.
	CircuitModeTwo CircuitModeOfOperation = 2
	// CircuitModeNone disables circuit control (for example an inserter
	// set to "none").
	CircuitModeNone CircuitModeOfOperation = 3
)

var circuitModes = intEnum[CircuitModeOfOperation]{
	name: "circuit mode of operation",
	values: []CircuitModeOfOperation{
		CircuitModeRoboport, CircuitModeSetRequests, CircuitModeTwo, CircuitModeNone,
	},
}

func (m CircuitModeOfOperation) MarshalJSON() ([]byte, error) { return circuitModes.marshal(m) }
func (m *CircuitModeOfOperation) UnmarshalJSON(data []byte) error {
	return circuitModes.unmarshal(data, m)
}

// ContentReadMode is how a belt or inserter reports its contents to
// the circuit network.
type ContentReadMode uint32

const (
	ContentReadPulse ContentReadMode = 0
	ContentReadHold  ContentReadMode = 1
)

var contentReadModes = intEnum[ContentReadMode]{
	name:   "content read mode",
	values: []ContentReadMode{ContentReadPulse, ContentReadHold},
}

func (m ContentReadMode) MarshalJSON() ([]byte, error)     { return contentReadModes.marshal(m) }
func (m *ContentReadMode) UnmarshalJSON(data []byte) error { return contentReadModes.unmarshal(data, m) }
