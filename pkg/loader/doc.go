// Package loader reads match inputs from disk: value documents in JSON,
// YAML, TOML or XML, and pattern files in the YAML pattern DSL.
//
// Value documents decode into the generic shapes the match rules operate
// on: maps, []any sequences, strings and numbers. XML documents become
// nested element maps so structural patterns can align over children.
package loader
