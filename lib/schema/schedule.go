// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Schedule is a train schedule shared by the listed locomotives.
type Schedule struct {
	Schedule    []ScheduleRecord `json:"schedule"`
	Locomotives []Index          `json:"locomotives"`
}

// MarshalJSON writes empty lists as [] rather than null; both fields
// are required by the game.
func (s Schedule) MarshalJSON() ([]byte, error) {
	type plain Schedule
	if s.Schedule == nil {
		s.Schedule = []ScheduleRecord{}
	}
	if s.Locomotives == nil {
		s.Locomotives = []Index{}
	}
	return marshalPlain(plain(s))
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	type plain Schedule
	return decodeRequired(data, (*plain)(s), "schedule", "schedule", "locomotives")
}

// ScheduleRecord is one station stop in a schedule.
type ScheduleRecord struct {
	Station        string          `json:"station"`
	WaitConditions []WaitCondition `json:"wait_conditions,omitempty"`
}

func (r *ScheduleRecord) UnmarshalJSON(data []byte) error {
	type plain ScheduleRecord
	return decodeRequired(data, (*plain)(r), "schedule record", "station")
}

// WaitCondition is one condition a train waits for at a stop. Ticks
// applies to time and inactivity conditions; Condition to item, fluid,
// and circuit conditions.
type WaitCondition struct {
	Type        WaitConditionType `json:"type"`
	CompareType CompareType       `json:"compare_type"`
	Ticks       *uint64           `json:"ticks,omitempty"`
	Condition   *CircuitCondition `json:"condition,omitempty"`
}

func (c *WaitCondition) UnmarshalJSON(data []byte) error {
	type plain WaitCondition
	return decodeRequired(data, (*plain)(c), "wait condition", "type", "compare_type")
}
