// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the blueprint
// command.
//
// Configuration comes from exactly one place: the file named by a
// --config flag (via [LoadFile]), else the file named by the
// BLUEPRINT_CONFIG environment variable (via [Load]), else the
// built-in [Default]. There is no ~/.config discovery and no per-key
// environment override, so the effective configuration is always the
// one file plus defaults.
//
// A file only needs the keys it changes:
//
//	codec:
//	  compression_level: 6
//	output:
//	  format: yaml
//	logging:
//	  level: debug
//
// Unknown keys are errors. [Config.Validate] reports every invalid
// value at once.
package config
