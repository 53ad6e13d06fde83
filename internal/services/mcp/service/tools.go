package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hunter-sheet/internal/services/mcp/domain"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.NenAffinityInput, domain.NenAffinityResult](),
	newMCPToolRegistrar[domain.AttributeProjectionInput, domain.AttributeProjectionResult](),
	newMCPToolRegistrar[domain.CharacterSheetGetInput, domain.CharacterSheetGetResult](),
	newMCPToolRegistrar[domain.CharacterFieldSetInput, domain.CharacterFieldSetResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func registerSheetTools(registrar mcpRegistrationTarget, service domain.SheetService) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.NenAffinityTool(), handler: domain.NenAffinityHandler()},
		{tool: domain.AttributeProjectionTool(), handler: domain.AttributeProjectionHandler(service)},
		{tool: domain.CharacterSheetGetTool(), handler: domain.CharacterSheetGetHandler(service)},
		{tool: domain.CharacterFieldSetTool(), handler: domain.CharacterFieldSetHandler(service)},
	}
	for _, registration := range registrations {
		if err := registrar.AddTool(registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}
