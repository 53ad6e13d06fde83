// Package sheet serves the character sheet web UI.
//
// Pages are rendered on the server; htmx posts one field change at a time
// and swaps the re-rendered sheet body back in.
package sheet
