// Package config loads TOML and YAML configuration for the Ultimate.Utilities
// command line tool.
//
// Package: config
// Title: Configuration Management
// Description: Values are addressed with dotted keys ("abbreviate.width").
//              When an environment prefix is set, ULTIMATE_ABBREVIATE_WIDTH
//              overrides the file value. Defaults fill keys the file does not
//              set, and ValidationRules check types and bounds.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-19
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("ultimate.toml", config.LoadOptions{
//		Format:    config.FormatAuto,
//		EnvPrefix: "ULTIMATE",
//		Defaults:  map[string]interface{}{"abbreviate": map[string]interface{}{"width": 10}},
//	})
//	width := cfg.GetInt("abbreviate.width")
package config
