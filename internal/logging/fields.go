// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldDryRun    = "dry_run"
	FieldJobs      = "jobs"
	FieldRisky     = "risky_allowed"
	FieldMaxPasses = "max_passes"
	FieldCache     = "cache"
	FieldEntries   = "entries"
	FieldSignature = "signature"

	// Fixing fields.
	FieldPass    = "pass"
	FieldFixers  = "fixers"
	FieldFixer   = "fixer"
	FieldCached  = "cached"
	FieldChanged = "changed"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
