// Package main hosts the grocymenu CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration once per invocation,
// builds the structured logger, and hands off to the internal packages: sync
// writes the menu data file, preview renders the same menu as a table, check
// runs the preflight checks, and config scaffolds or validates settings.
//
// Keep this package lean: add behaviour to the internal packages first and
// surface it here through commands or flags.
package main
