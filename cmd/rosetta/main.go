// Rosetta resolves application text keys into localized strings using
// translator-authored rules with per-rule guard expressions.
//
// Usage:
//
//	# Translate a key against a lexicon directory
//	rosetta translate --config config.yaml select.colour 2
//
//	# Validate lexicon files and their guard expressions
//	rosetta lint ./lexicon
//
//	# Serve lookups over HTTP with hot reload
//	rosetta serve --config config.yaml
//
//	# Show version information
//	rosetta version
package main

func main() {
	Execute()
}
