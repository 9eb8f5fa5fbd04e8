// Package emodeldb holds application-wide metadata for EModelDB,
// a database of empirical substitution models of protein evolution.
package emodeldb

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
