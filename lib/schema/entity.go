// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Entity is one placed object in a blueprint. EntityNumber, Name, and
// Position are required; everything else is optional and omitted from
// the JSON when unset. Which optional fields the game writes depends on
// the prototype: inserters carry DropPosition, train stops carry
// Station, speakers carry Parameters, and so on.
type Entity struct {
	EntityNumber Index    `json:"entity_number"`
	Name         string   `json:"name"`
	Position     Position `json:"position"`

	Direction   *uint8 `json:"direction,omitempty"`
	Orientation *Real  `json:"orientation,omitempty"`

	Connections     EntityConnections `json:"connections,omitempty"`
	ControlBehavior *ControlBehavior  `json:"control_behavior,omitempty"`

	// Items are modules or fuel requested for delivery on placement.
	Items            *ItemRequest      `json:"items,omitempty"`
	Recipe           *string           `json:"recipe,omitempty"`
	Bar              *uint16           `json:"bar,omitempty"`
	Inventory        *Inventory        `json:"inventory,omitempty"`
	InfinitySettings *InfinitySettings `json:"infinity_settings,omitempty"`

	Type           *EntityType     `json:"type,omitempty"`
	InputPriority  *EntityPriority `json:"input_priority,omitempty"`
	OutputPriority *EntityPriority `json:"output_priority,omitempty"`

	Filter            *string           `json:"filter,omitempty"`
	Filters           []ItemFilter      `json:"filters,omitempty"`
	FilterMode        *EntityFilterMode `json:"filter_mode,omitempty"`
	OverrideStackSize *uint8            `json:"override_stack_size,omitempty"`
	DropPosition      *Position         `json:"drop_position,omitempty"`
	PickupPosition    *Position         `json:"pickup_position,omitempty"`

	RequestFilters     []LogisticFilter `json:"request_filters,omitempty"`
	RequestFromBuffers *bool            `json:"request_from_buffers,omitempty"`

	Parameters      *SpeakerParameter      `json:"parameters,omitempty"`
	AlertParameters *SpeakerAlertParameter `json:"alert_parameters,omitempty"`

	AutoLaunch        *bool   `json:"auto_launch,omitempty"`
	Variation         *uint8  `json:"variation,omitempty"`
	Color             *Color  `json:"color,omitempty"`
	Station           *string `json:"station,omitempty"`
	SwitchState       *bool   `json:"switch_state,omitempty"`
	ManualTrainsLimit *uint32 `json:"manual_trains_limit,omitempty"`

	// Neighbours lists the entity numbers of connected power poles.
	Neighbours []Index `json:"neighbours,omitempty"`
}

// NewEntity returns an entity with only its required fields set.
func NewEntity(number Index, name string, position Position) Entity {
	return Entity{EntityNumber: number, Name: name, Position: position}
}

func (e *Entity) UnmarshalJSON(data []byte) error {
	type plain Entity
	return decodeRequired(data, (*plain)(e), "entity", "entity_number", "name", "position")
}

// ControlBehavior is the circuit network configuration of an entity.
// Its fields were worked out from game exports; each is used only by
// the entity kinds named in its comment.
type ControlBehavior struct {
	ConnectToLogisticNetwork *bool `json:"connect_to_logistic_network,omitempty"`

	// Combinators.
	ArithmeticConditions *ArithmeticConditions `json:"arithmetic_conditions,omitempty"`
	DeciderConditions    *DeciderConditions    `json:"decider_conditions,omitempty"`
	LogisticCondition    *LogisticCondition    `json:"logistic_condition,omitempty"`
	// Filters and IsOn are used by constant combinators. IsOn
	// defaults to true in game when absent.
	Filters []ControlFilter `json:"filters,omitempty"`
	IsOn    *bool           `json:"is_on,omitempty"`

	// Lamps.
	UseColors *bool `json:"use_colors,omitempty"`

	CircuitCondition       *CircuitCondition       `json:"circuit_condition,omitempty"`
	CircuitModeOfOperation *CircuitModeOfOperation `json:"circuit_mode_of_operation,omitempty"`
	CircuitEnableDisable   *bool                   `json:"circuit_enable_disable,omitempty"`

	// Belts and inserters.
	CircuitContentsReadMode *ContentReadMode `json:"circuit_contents_read_mode,omitempty"`
	CircuitHandReadMode     *ContentReadMode `json:"circuit_hand_read_mode,omitempty"`
	CircuitReadHandContents *bool            `json:"circuit_read_hand_contents,omitempty"`
	CircuitSetStackSize     *bool            `json:"circuit_set_stack_size,omitempty"`
	StackControlInputSignal *SimpleEntity    `json:"stack_control_input_signal,omitempty"`

	// Speakers.
	CircuitParameters *SpeakerCircuitParameters `json:"circuit_parameters,omitempty"`

	// Accumulators.
	OutputSignal *SimpleEntity `json:"output_signal,omitempty"`

	// Train stops.
	ReadFromTrain      *bool         `json:"read_from_train,omitempty"`
	ReadStoppedTrain   *bool         `json:"read_stopped_train,omitempty"`
	ReadTrainsCount    *bool         `json:"read_trains_count,omitempty"`
	SetTrainsLimit     *bool         `json:"set_trains_limit,omitempty"`
	SendToTrain        *bool         `json:"send_to_train,omitempty"`
	TrainStoppedSignal *SimpleEntity `json:"train_stopped_signal,omitempty"`
	TrainsCountSignal  *SimpleEntity `json:"trains_count_signal,omitempty"`
	TrainsLimitSignal  *SimpleEntity `json:"trains_limit_signal,omitempty"`

	// Roboports. With ReadRobotStats set and the output signals unset,
	// the game falls back to the X, Y, Z, and T virtual signals.
	ReadLogistics                     *bool         `json:"read_logistics,omitempty"`
	ReadRobotStats                    *bool         `json:"read_robot_stats,omitempty"`
	AvailableConstructionOutputSignal *SimpleEntity `json:"available_construction_output_signal,omitempty"`
	AvailableLogisticOutputSignal     *SimpleEntity `json:"available_logistic_output_signal,omitempty"`
	TotalConstructionOutputSignal     *SimpleEntity `json:"total_construction_output_signal,omitempty"`
	TotalLogisticOutputSignal         *SimpleEntity `json:"total_logistic_output_signal,omitempty"`

	// Gates.
	CircuitOpenGate   *bool `json:"circuit_open_gate,omitempty"`
	CircuitReadSensor *bool `json:"circuit_read_sensor,omitempty"`

	// Rail signals.
	CircuitCloseSignal *bool `json:"circuit_close_signal,omitempty"`
	CircuitReadSignal  *bool `json:"circuit_read_signal,omitempty"`
}

// ArithmeticConditions configures an arithmetic combinator. Each
// operand is either a constant or a signal.
type ArithmeticConditions struct {
	FirstConstant  *int32    `json:"first_constant,omitempty"`
	FirstSignal    *SignalID `json:"first_signal,omitempty"`
	SecondConstant *int32    `json:"second_constant,omitempty"`
	SecondSignal   *SignalID `json:"second_signal,omitempty"`
	// Operation is the operator text as the game writes it ("*",
	// "/", "AND", "<<", ...).
	Operation    string    `json:"operation"`
	OutputSignal *SignalID `json:"output_signal,omitempty"`
}

func (c *ArithmeticConditions) UnmarshalJSON(data []byte) error {
	type plain ArithmeticConditions
	return decodeRequired(data, (*plain)(c), "arithmetic conditions", "operation")
}

// DeciderConditions configures a decider combinator.
type DeciderConditions struct {
	FirstSignal        *SignalID `json:"first_signal,omitempty"`
	SecondSignal       *SignalID `json:"second_signal,omitempty"`
	Constant           *int32    `json:"constant,omitempty"`
	Comparator         string    `json:"comparator"`
	OutputSignal       *SignalID `json:"output_signal,omitempty"`
	CopyCountFromInput *bool     `json:"copy_count_from_input,omitempty"`
}

func (c *DeciderConditions) UnmarshalJSON(data []byte) error {
	type plain DeciderConditions
	return decodeRequired(data, (*plain)(c), "decider conditions", "comparator")
}

// LogisticCondition enables an entity based on logistic network
// contents.
type LogisticCondition struct {
	FirstSignal  *SignalID `json:"first_signal,omitempty"`
	SecondSignal *SignalID `json:"second_signal,omitempty"`
	Constant     *int32    `json:"constant,omitempty"`
	Comparator   string    `json:"comparator"`
}

func (c *LogisticCondition) UnmarshalJSON(data []byte) error {
	type plain LogisticCondition
	return decodeRequired(data, (*plain)(c), "logistic condition", "comparator")
}

// CircuitCondition enables an entity, or ends a train wait, based on
// circuit network signals.
type CircuitCondition struct {
	Comparator   string        `json:"comparator"`
	Constant     *int32        `json:"constant,omitempty"`
	FirstSignal  *SimpleEntity `json:"first_signal,omitempty"`
	SecondSignal *SimpleEntity `json:"second_signal,omitempty"`
}

func (c *CircuitCondition) UnmarshalJSON(data []byte) error {
	type plain CircuitCondition
	return decodeRequired(data, (*plain)(c), "circuit condition", "comparator")
}

// SpeakerCircuitParameters selects what a programmable speaker plays
// when driven by the circuit network.
type SpeakerCircuitParameters struct {
	InstrumentID       int32 `json:"instrument_id"`
	NoteID             int32 `json:"note_id"`
	SignalValueIsPitch bool  `json:"signal_value_is_pitch"`
}

func (p *SpeakerCircuitParameters) UnmarshalJSON(data []byte) error {
	type plain SpeakerCircuitParameters
	return decodeRequired(data, (*plain)(p), "speaker circuit parameters",
		"instrument_id", "note_id", "signal_value_is_pitch")
}

// SpeakerParameter is the playback configuration of a programmable
// speaker.
type SpeakerParameter struct {
	PlaybackVolume   Real `json:"playback_volume"`
	PlaybackGlobally bool `json:"playback_globally"`
	AllowPolyphony   bool `json:"allow_polyphony"`
}

func (p *SpeakerParameter) UnmarshalJSON(data []byte) error {
	type plain SpeakerParameter
	return decodeRequired(data, (*plain)(p), "speaker parameter",
		"playback_volume", "playback_globally", "allow_polyphony")
}

// SpeakerAlertParameter is the alert configuration of a programmable
// speaker.
type SpeakerAlertParameter struct {
	ShowAlert    bool      `json:"show_alert"`
	ShowOnMap    bool      `json:"show_on_map"`
	IconSignalID *SignalID `json:"icon_signal_id,omitempty"`
	AlertMessage string    `json:"alert_message"`
}

func (p *SpeakerAlertParameter) UnmarshalJSON(data []byte) error {
	type plain SpeakerAlertParameter
	return decodeRequired(data, (*plain)(p), "speaker alert parameter",
		"show_alert", "show_on_map", "alert_message")
}

// Inventory is the filter and limit configuration of a cargo wagon.
type Inventory struct {
	Filters []ItemFilter `json:"filters"`
	Bar     *uint16      `json:"bar,omitempty"`
}

func (i Inventory) MarshalJSON() ([]byte, error) {
	type plain Inventory
	if i.Filters == nil {
		i.Filters = []ItemFilter{}
	}
	return marshalPlain(plain(i))
}

func (i *Inventory) UnmarshalJSON(data []byte) error {
	type plain Inventory
	return decodeRequired(data, (*plain)(i), "inventory", "filters")
}

// ItemFilter restricts one inventory slot to an item.
type ItemFilter struct {
	Name  string `json:"name"`
	Index Index  `json:"index"`
}

func (f *ItemFilter) UnmarshalJSON(data []byte) error {
	type plain ItemFilter
	return decodeRequired(data, (*plain)(f), "item filter", "name", "index")
}

// InfinitySettings configures an infinity chest.
type InfinitySettings struct {
	RemoveUnfilteredItems bool             `json:"remove_unfiltered_items"`
	Filters               []InfinityFilter `json:"filters,omitempty"`
}

func (s *InfinitySettings) UnmarshalJSON(data []byte) error {
	type plain InfinitySettings
	return decodeRequired(data, (*plain)(s), "infinity settings", "remove_unfiltered_items")
}

// InfinityFilter holds an item count in an infinity chest slot.
type InfinityFilter struct {
	Name  string             `json:"name"`
	Count uint32             `json:"count"`
	Mode  InfinityFilterMode `json:"mode"`
	Index Index              `json:"index"`
}

func (f *InfinityFilter) UnmarshalJSON(data []byte) error {
	type plain InfinityFilter
	return decodeRequired(data, (*plain)(f), "infinity filter", "name", "count", "mode", "index")
}

// LogisticFilter is one request slot of a requester or buffer chest.
type LogisticFilter struct {
	Name  string `json:"name"`
	Index Index  `json:"index"`
	Count uint32 `json:"count"`
}

func (f *LogisticFilter) UnmarshalJSON(data []byte) error {
	type plain LogisticFilter
	return decodeRequired(data, (*plain)(f), "logistic filter", "name", "index", "count")
}

// ControlFilter is one signal slot of a constant combinator.
type ControlFilter struct {
	Signal SignalID `json:"signal"`
	Index  Index    `json:"index"`
	Count  int32    `json:"count"`
}

func (f *ControlFilter) UnmarshalJSON(data []byte) error {
	type plain ControlFilter
	return decodeRequired(data, (*plain)(f), "control filter", "signal", "index", "count")
}

// SignalID names a signal: an item, a fluid, or a virtual signal.
type SignalID struct {
	Name string     `json:"name"`
	Type SignalType `json:"type"`
}

func (s *SignalID) UnmarshalJSON(data []byte) error {
	type plain SignalID
	return decodeRequired(data, (*plain)(s), "signal id", "name", "type")
}

// SimpleEntity is a loosely typed prototype reference. Type is free
// text ("item", "entity", "virtual"); Name may be absent for an unset
// signal slot.
type SimpleEntity struct {
	Type string  `json:"type"`
	Name *string `json:"name,omitempty"`
}

func (s *SimpleEntity) UnmarshalJSON(data []byte) error {
	type plain SimpleEntity
	return decodeRequired(data, (*plain)(s), "simple entity", "type")
}

// Tile is one placed floor tile.
type Tile struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

func (t *Tile) UnmarshalJSON(data []byte) error {
	type plain Tile
	return decodeRequired(data, (*plain)(t), "tile", "name", "position")
}

// Icon is one of up to four icons shown for a blueprint or planner.
type Icon struct {
	Index  Index    `json:"index"`
	Signal SignalID `json:"signal"`
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	type plain Icon
	return decodeRequired(data, (*plain)(i), "icon", "index", "signal")
}

