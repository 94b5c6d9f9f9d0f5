package probe

import (
	"testing"
)

func TestGoogleSearchTool(t *testing.T) {
	tool := GoogleSearch()
	if tool.Builtin != BuiltinGoogleSearch {
		t.Errorf("expected builtin %s, got %s", BuiltinGoogleSearch, tool.Builtin)
	}
	if tool.InputSchema != nil {
		t.Error("expected no input schema on a builtin tool")
	}
}

func TestNewFunctionTool(t *testing.T) {
	type request struct {
		Location string `json:"location"`
	}
	tool, err := NewFunctionTool[request]("get_weather", "Get current weather")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tool.Name != "get_weather" || tool.Description != "Get current weather" {
		t.Errorf("unexpected tool %+v", tool)
	}
	if tool.Builtin != "" {
		t.Errorf("expected a function tool, got builtin %s", tool.Builtin)
	}
	if tool.InputSchema == nil || tool.InputSchema.Type != "object" {
		t.Fatalf("expected object schema, got %+v", tool.InputSchema)
	}
	if _, ok := tool.InputSchema.Properties["location"]; !ok {
		t.Errorf("expected location property, got %+v", tool.InputSchema.Properties)
	}
}
