// Package branding holds the product name shown outside the localized UI.
package branding

// AppName is the product name used by the MCP server and CLI banners.
const AppName = "Hunter Sheet"
