package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/character"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/geometry"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/meter"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/templates"
)

// SheetService is the subset of sheet operations the tools call.
type SheetService interface {
	Character(ctx context.Context, id string) (character.Character, error)
	SetField(ctx context.Context, id, field, raw string) (character.Character, error)
}

// AffinityEntry is one target type's efficiency.
type AffinityEntry struct {
	Type       string  `json:"type" jsonschema:"target nen type"`
	Efficiency float64 `json:"efficiency" jsonschema:"efficiency ratio between 0 and 1"`
	Percent    string  `json:"percent" jsonschema:"efficiency as a whole percentage"`
	Active     bool    `json:"active" jsonschema:"whether this is the active type"`
}

// NenAffinityInput represents the MCP tool input for the affinity table.
type NenAffinityInput struct {
	NenType string `json:"nen_type" jsonschema:"active nen type (enhancer, transmuter, emitter, conjurer, manipulator, specialist)"`
}

// NenAffinityResult represents the MCP tool output for the affinity table.
type NenAffinityResult struct {
	NenType    string          `json:"nen_type" jsonschema:"resolved active nen type"`
	Affinities []AffinityEntry `json:"affinities" jsonschema:"efficiency per type in hexagon order"`
}

// AttributeValues carries the six attribute scores.
type AttributeValues struct {
	Strength         int `json:"strength" jsonschema:"strength score"`
	Constitution     int `json:"constitution" jsonschema:"constitution score"`
	Intelligence     int `json:"intelligence" jsonschema:"intelligence score"`
	Charisma         int `json:"charisma" jsonschema:"charisma score"`
	Determination    int `json:"determination" jsonschema:"determination score"`
	Prestidigitation int `json:"prestidigitation" jsonschema:"prestidigitation score"`
}

func (v AttributeValues) set() character.AttributeSet {
	return character.AttributeSet{
		Strength:         v.Strength,
		Constitution:     v.Constitution,
		Intelligence:     v.Intelligence,
		Charisma:         v.Charisma,
		Determination:    v.Determination,
		Prestidigitation: v.Prestidigitation,
	}
}

// AttributeProjectionInput represents the MCP tool input for radar projection.
type AttributeProjectionInput struct {
	CharacterID string           `json:"character_id,omitempty" jsonschema:"project the stored sheet with this id"`
	Attributes  *AttributeValues `json:"attributes,omitempty" jsonschema:"explicit scores, used when character_id is empty"`
	Size        int              `json:"size,omitempty" jsonschema:"chart edge length, defaults to 280"`
}

// ProjectedVertex is one radar vertex.
type ProjectedVertex struct {
	Attribute string  `json:"attribute" jsonschema:"attribute name"`
	Value     int     `json:"value" jsonschema:"true attribute score"`
	Ratio     float64 `json:"ratio" jsonschema:"plotted fraction of the radius after clamping"`
	X         float64 `json:"x" jsonschema:"x coordinate"`
	Y         float64 `json:"y" jsonschema:"y coordinate"`
}

// AttributeProjectionResult represents the MCP tool output for radar projection.
type AttributeProjectionResult struct {
	Size     int               `json:"size" jsonschema:"chart edge length"`
	Min      float64           `json:"min" jsonschema:"lowest displayed score"`
	Max      float64           `json:"max" jsonschema:"highest displayed score"`
	Points   string            `json:"points" jsonschema:"SVG polygon points attribute"`
	Vertices []ProjectedVertex `json:"vertices" jsonschema:"vertices clockwise from the top axis"`
}

// CharacterSheetGetInput represents the MCP tool input for reading a sheet.
type CharacterSheetGetInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// ResourceBar is one pool with its bar fill.
type ResourceBar struct {
	Current     int     `json:"current" jsonschema:"current value"`
	Max         int     `json:"max" jsonschema:"maximum value"`
	FillPercent float64 `json:"fill_percent" jsonschema:"bar fill between 0 and 100"`
}

// CharacterSheetGetResult represents the MCP tool output for reading a sheet.
type CharacterSheetGetResult struct {
	Character  character.Character `json:"character" jsonschema:"full character sheet"`
	HP         ResourceBar         `json:"hp" jsonschema:"hit point bar"`
	Nen        ResourceBar         `json:"nen" jsonschema:"nen pool bar"`
	XP         ResourceBar         `json:"xp" jsonschema:"experience bar"`
	Affinities []AffinityEntry     `json:"affinities" jsonschema:"efficiency per type for the active nen type"`
}

// CharacterFieldSetInput represents the MCP tool input for a field update.
type CharacterFieldSetInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Field       string `json:"field" jsonschema:"numeric field path such as hp.current or attributes.strength"`
	Value       string `json:"value" jsonschema:"raw value; a leading integer is used and anything else becomes 0"`
}

// CharacterFieldSetResult represents the MCP tool output for a field update.
type CharacterFieldSetResult struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Field       string `json:"field" jsonschema:"updated field path"`
	Value       int    `json:"value" jsonschema:"stored value"`
}

// NenAffinityTool defines the MCP tool schema for the affinity table.
func NenAffinityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "nen_affinity",
		Description: "Lists the Nen efficiency of every type for an active type",
	}
}

// AttributeProjectionTool defines the MCP tool schema for radar projection.
func AttributeProjectionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "attribute_projection",
		Description: "Projects six attribute scores onto the radar chart",
	}
}

// CharacterSheetGetTool defines the MCP tool schema for reading a sheet.
func CharacterSheetGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_sheet_get",
		Description: "Returns a character sheet with its bar fills and affinities",
	}
}

// CharacterFieldSetTool defines the MCP tool schema for a field update.
func CharacterFieldSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_field_set",
		Description: "Sets one numeric field on a character sheet",
	}
}

// NenAffinityHandler computes the affinity table.
func NenAffinityHandler() mcp.ToolHandlerFor[NenAffinityInput, NenAffinityResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NenAffinityInput) (*mcp.CallToolResult, NenAffinityResult, error) {
		active, ok := nen.Parse(input.NenType)
		if !ok {
			return nil, NenAffinityResult{}, fmt.Errorf("nen type %q is not supported", input.NenType)
		}
		return &mcp.CallToolResult{}, NenAffinityResult{
			NenType:    string(active),
			Affinities: affinityEntries(active),
		}, nil
	}
}

// AttributeProjectionHandler projects attributes onto the radar.
func AttributeProjectionHandler(service SheetService) mcp.ToolHandlerFor[AttributeProjectionInput, AttributeProjectionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AttributeProjectionInput) (*mcp.CallToolResult, AttributeProjectionResult, error) {
		var attrs character.AttributeSet
		switch {
		case strings.TrimSpace(input.CharacterID) != "":
			if service == nil {
				return nil, AttributeProjectionResult{}, fmt.Errorf("sheet service is not configured")
			}
			c, err := service.Character(ctx, input.CharacterID)
			if err != nil {
				return nil, AttributeProjectionResult{}, fmt.Errorf("character get failed: %w", err)
			}
			attrs = c.Attributes
		case input.Attributes != nil:
			attrs = input.Attributes.set()
		default:
			return nil, AttributeProjectionResult{}, fmt.Errorf("character_id or attributes is required")
		}

		size := input.Size
		if size <= 0 {
			size = templates.RadarSize
		}
		polygon := geometry.Project(templates.RadarSamples(attrs), templates.RadarRange, templates.RadarFrame(size))

		result := AttributeProjectionResult{
			Size:     size,
			Min:      templates.RadarRange.Min,
			Max:      templates.RadarRange.Max,
			Points:   polygon.SVGPoints(),
			Vertices: make([]ProjectedVertex, 0, len(polygon.Vertices)),
		}
		for _, vertex := range polygon.Vertices {
			result.Vertices = append(result.Vertices, ProjectedVertex{
				Attribute: vertex.Key,
				Value:     int(vertex.Value),
				Ratio:     vertex.Ratio,
				X:         vertex.Point.X,
				Y:         vertex.Point.Y,
			})
		}
		return &mcp.CallToolResult{}, result, nil
	}
}

// CharacterSheetGetHandler reads a character sheet.
func CharacterSheetGetHandler(service SheetService) mcp.ToolHandlerFor[CharacterSheetGetInput, CharacterSheetGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterSheetGetInput) (*mcp.CallToolResult, CharacterSheetGetResult, error) {
		if service == nil {
			return nil, CharacterSheetGetResult{}, fmt.Errorf("sheet service is not configured")
		}
		if strings.TrimSpace(input.CharacterID) == "" {
			return nil, CharacterSheetGetResult{}, fmt.Errorf("character_id is required")
		}
		c, err := service.Character(ctx, input.CharacterID)
		if err != nil {
			return nil, CharacterSheetGetResult{}, fmt.Errorf("character get failed: %w", err)
		}
		return &mcp.CallToolResult{}, CharacterSheetGetResult{
			Character:  c,
			HP:         resourceBar(c.HP),
			Nen:        resourceBar(c.Nen),
			XP:         resourceBar(c.XP),
			Affinities: affinityEntries(c.NenType),
		}, nil
	}
}

// CharacterFieldSetHandler updates one numeric field.
func CharacterFieldSetHandler(service SheetService) mcp.ToolHandlerFor[CharacterFieldSetInput, CharacterFieldSetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterFieldSetInput) (*mcp.CallToolResult, CharacterFieldSetResult, error) {
		if service == nil {
			return nil, CharacterFieldSetResult{}, fmt.Errorf("sheet service is not configured")
		}
		if strings.TrimSpace(input.CharacterID) == "" {
			return nil, CharacterFieldSetResult{}, fmt.Errorf("character_id is required")
		}
		field := strings.TrimSpace(input.Field)
		c, err := service.SetField(ctx, input.CharacterID, field, input.Value)
		if err != nil {
			return nil, CharacterFieldSetResult{}, fmt.Errorf("character field set failed: %w", err)
		}
		value, _ := character.Value(c, field)
		return &mcp.CallToolResult{}, CharacterFieldSetResult{
			CharacterID: c.ID,
			Field:       field,
			Value:       value,
		}, nil
	}
}

func affinityEntries(active nen.Type) []AffinityEntry {
	affinities := nen.Efficiencies(active)
	out := make([]AffinityEntry, 0, len(affinities))
	for _, affinity := range affinities {
		out = append(out, AffinityEntry{
			Type:       string(affinity.Type),
			Efficiency: affinity.Efficiency,
			Percent:    meter.FormatPercent(affinity.Efficiency),
			Active:     affinity.Active,
		})
	}
	return out
}

func resourceBar(pool character.Pool) ResourceBar {
	return ResourceBar{
		Current:     pool.Current,
		Max:         pool.Max,
		FillPercent: meter.FillPercent(pool.Current, pool.Max),
	}
}
