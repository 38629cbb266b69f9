// Package registry provides a generic, type-safe ordered registry. Unlike a
// plain name-keyed registry, insertion order is part of the contract: items
// form a priority chain, and callers may insert at arbitrary positions to
// splice their own entries between existing ones. The match engine stores
// its dispatch rules in one.
package registry
