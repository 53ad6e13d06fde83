// Package domain maps MCP tool calls onto sheet operations.
//
// Each tool has an input and result type whose jsonschema tags describe the
// tool contract, a Tool constructor and a typed handler.
package domain
