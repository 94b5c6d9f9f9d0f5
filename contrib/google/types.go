package google

import (
	"fmt"

	"github.com/go-kratos/probe"
	"google.golang.org/genai"
)

func convertMessageToGenAI(req *probe.ModelRequest) (*genai.Content, []*genai.Content, error) {
	var (
		system   *genai.Content
		contents []*genai.Content
	)
	for _, msg := range req.Messages {
		parts, err := convertMessagePartsToGenAI(msg.Parts)
		if err != nil {
			return nil, nil, err
		}
		switch msg.Role {
		case probe.RoleSystem:
			system = &genai.Content{Parts: parts}
		case probe.RoleUser:
			contents = append(contents, &genai.Content{Role: string(genai.RoleUser), Parts: parts})
		case probe.RoleAssistant:
			contents = append(contents, &genai.Content{Role: string(genai.RoleModel), Parts: parts})
		default:
			return nil, nil, fmt.Errorf("unsupported message role %q", msg.Role)
		}
	}
	return system, contents, nil
}

func convertMessagePartsToGenAI(parts []probe.Part) ([]*genai.Part, error) {
	res := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case probe.TextPart:
			res = append(res, &genai.Part{Text: v.Text})
		case probe.DataPart:
			res = append(res, &genai.Part{
				InlineData: &genai.Blob{
					Data:        v.Bytes,
					DisplayName: v.Name,
					MIMEType:    string(v.MIMEType),
				},
			})
		default:
			return nil, fmt.Errorf("unsupported message part %T", part)
		}
	}
	return res, nil
}

func convertToolsToGenAI(tools []*probe.Tool) ([]*genai.Tool, error) {
	genaiTools := make([]*genai.Tool, 0, len(tools))
	for _, tool := range tools {
		genaiTool, err := convertToolToGenAI(tool)
		if err != nil {
			return nil, fmt.Errorf("converting tool %s: %w", tool.Name, err)
		}
		genaiTools = append(genaiTools, genaiTool)
	}
	return genaiTools, nil
}

func convertToolToGenAI(tool *probe.Tool) (*genai.Tool, error) {
	switch tool.Builtin {
	case probe.BuiltinGoogleSearch:
		return &genai.Tool{GoogleSearch: &genai.GoogleSearch{}}, nil
	case "":
	default:
		return nil, fmt.Errorf("unsupported builtin tool %q", tool.Builtin)
	}
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:                 tool.Name,
				Description:          tool.Description,
				ParametersJsonSchema: tool.InputSchema,
			},
		},
	}, nil
}

// convertGenAIToProbe converts the first candidate of resp. Gemini returns a
// single candidate unless CandidateCount is raised, which the probe never does.
func convertGenAIToProbe(resp *genai.GenerateContentResponse) (*probe.ModelResponse, error) {
	if resp == nil {
		return nil, ErrEmptyResponse
	}
	response := &probe.ModelResponse{
		Message: &probe.Message{Role: probe.RoleAssistant},
		Usage:   convertUsage(resp.UsageMetadata),
	}
	if len(resp.Candidates) == 0 {
		return response, nil
	}
	candidate := resp.Candidates[0]
	response.FinishReason = string(candidate.FinishReason)
	response.Grounding = convertGrounding(candidate.GroundingMetadata)
	if candidate.Content == nil {
		return response, nil
	}
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		if p := convertGenAIPartToProbe(part); p != nil {
			response.Message.Parts = append(response.Message.Parts, p)
		}
	}
	return response, nil
}

func convertGenAIPartToProbe(part *genai.Part) probe.Part {
	if part.InlineData != nil {
		return probe.DataPart{
			Bytes:    part.InlineData.Data,
			Name:     part.InlineData.DisplayName,
			MIMEType: probe.MIMEType(part.InlineData.MIMEType),
		}
	}
	if part.Text != "" {
		return probe.TextPart{Text: part.Text}
	}
	return nil
}

func convertGrounding(metadata *genai.GroundingMetadata) *probe.Grounding {
	if metadata == nil {
		return nil
	}
	grounding := &probe.Grounding{Queries: metadata.WebSearchQueries}
	for _, chunk := range metadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		grounding.Sources = append(grounding.Sources, probe.Source{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	if len(grounding.Queries) == 0 && len(grounding.Sources) == 0 {
		return nil
	}
	return grounding
}

func convertUsage(metadata *genai.GenerateContentResponseUsageMetadata) *probe.Usage {
	if metadata == nil {
		return nil
	}
	return &probe.Usage{
		PromptTokens: int64(metadata.PromptTokenCount),
		OutputTokens: int64(metadata.CandidatesTokenCount),
		TotalTokens:  int64(metadata.TotalTokenCount),
	}
}
