package probe

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// BuiltinTool names a capability executed by the model provider itself.
type BuiltinTool string

const (
	// BuiltinGoogleSearch lets the model ground its answer in web search results.
	BuiltinGoogleSearch BuiltinTool = "google_search"
)

// Tool declares a capability the model may use during generation. A tool is
// either a provider builtin or a function declaration with an input schema.
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"inputSchema,omitempty"`
	Builtin     BuiltinTool        `json:"builtin,omitempty"`
}

// GoogleSearch returns the builtin web search tool.
func GoogleSearch() *Tool {
	return &Tool{Name: string(BuiltinGoogleSearch), Builtin: BuiltinGoogleSearch}
}

// NewFunctionTool declares a function tool whose input schema is inferred from I.
func NewFunctionTool[I any](name, description string) (*Tool, error) {
	inputSchema, err := jsonschema.For[I](nil)
	if err != nil {
		return nil, err
	}
	return &Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}, nil
}
