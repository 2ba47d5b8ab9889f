// Package tools defines the tool surface exposed over the MCP transport.
//
// Each tool is a standalone unit with a JSON schema for its arguments and an
// execute function producing a text payload. Tools are registered in a
// Registry and listed/called by the server layer.
package tools

import (
	"context"
)

// ToolCategory classifies tools for listing and filtering.
type ToolCategory string

const (
	// CategoryCatalog covers catalog and taxonomy lookups.
	CategoryCatalog ToolCategory = "catalog"

	// CategoryAnalysis covers distance, blending, and neighbor scans.
	CategoryAnalysis ToolCategory = "analysis"

	// CategoryGeneration covers prompt composition for downstream models.
	CategoryGeneration ToolCategory = "generation"

	// CategoryMeta covers server self-description.
	CategoryMeta ToolCategory = "meta"
)

// Property describes a single parameter property for JSON schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
	Enum        []any  `json:"enum,omitempty"`
	// Items describes array element schema (required for type="array")
	Items *PropertyItems `json:"items,omitempty"`
}

// PropertyItems describes the schema for array elements.
type PropertyItems struct {
	Type string `json:"type"`
}

// ToolSchema defines the JSON schema for tool arguments.
type ToolSchema struct {
	// Required lists parameters that must be provided.
	Required []string `json:"required"`

	// Properties describes each parameter.
	Properties map[string]Property `json:"properties"`
}

// JSONSchema renders the schema as a JSON-schema object document, the shape
// MCP clients expect under inputSchema.
func (s ToolSchema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Properties))
	for name, p := range s.Properties {
		props[name] = p
	}
	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(s.Required) > 0 {
		doc["required"] = s.Required
	}
	return doc
}

// ExecuteFunc is the signature for tool execution.
// Returns the result payload and any error.
type ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool defines a callable tool exposed to MCP clients.
type Tool struct {
	// Name is the unique identifier for the tool.
	Name string

	// Description explains what the tool does.
	// Used for LLM tool calling and documentation.
	Description string

	// Category classifies the tool.
	Category ToolCategory

	// Execute runs the tool with the given arguments.
	Execute ExecuteFunc

	// Schema defines the expected arguments.
	Schema ToolSchema

	// ReadOnly marks tools that never mutate state. Every tool in this
	// server is read-only; the flag is surfaced as an MCP annotation.
	ReadOnly bool
}

// Validate checks if the tool definition is valid.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// ToolResult wraps the result of tool execution with metadata.
type ToolResult struct {
	// ToolName identifies which tool was executed.
	ToolName string

	// Result is the payload output from the tool.
	Result string

	// Error is set if the tool failed.
	Error error

	// DurationMs is how long execution took.
	DurationMs int64
}

// IsSuccess returns true if the tool executed without error.
func (r *ToolResult) IsSuccess() bool {
	return r.Error == nil
}
