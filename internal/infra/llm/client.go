package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tablebook/internal/pkg/config"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/assistant"
)

const (
	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"
)

// Client talks to the Anthropic messages API and adapts its content-block
// format to the dispatcher's model port.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(cfg config.AssistantConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
	Tools     []apiTool    `json:"tools,omitempty"`
}

type apiMessage struct {
	Role    string            `json:"role"`
	Content []apiContentBlock `json:"content"`
}

// apiContentBlock is a union: exactly one of the groups is populated,
// selected by Type (text, tool_use, tool_result).
type apiContentBlock struct {
	Type string `json:"type"`

	Text string `json:"text,omitempty"`

	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	ToolUseID string `json:"tool_use_id,omitempty"`
	Content   string `json:"content,omitempty"`
	IsError   bool   `json:"is_error,omitempty"`
}

type apiTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

type apiResponse struct {
	Content    []apiContentBlock `json:"content"`
	StopReason string            `json:"stop_reason"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Complete(ctx context.Context, req assistant.ChatRequest) (*assistant.ModelReply, error) {
	body, err := json.Marshal(apiRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  toAPIMessages(req.Messages),
		Tools:     toAPITools(req.Tools),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode model request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build model request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "model request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read model response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errs.New(fmt.Sprintf("model API %d: %s", resp.StatusCode, apiErr.Error.Message))
		}
		return nil, errs.New(fmt.Sprintf("model API returned status %d", resp.StatusCode))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode model response")
	}

	return toModelReply(parsed), nil
}

func toAPIMessages(messages []assistant.Message) []apiMessage {
	out := make([]apiMessage, 0, len(messages))
	for _, m := range messages {
		var blocks []apiContentBlock
		if m.Text != "" {
			blocks = append(blocks, apiContentBlock{Type: "text", Text: m.Text})
		}
		for _, call := range m.ToolCalls {
			input := call.Input
			if len(input) == 0 {
				input = json.RawMessage(`{}`)
			}
			blocks = append(blocks, apiContentBlock{Type: "tool_use", ID: call.ID, Name: call.Name, Input: input})
		}
		for _, result := range m.ToolResults {
			blocks = append(blocks, apiContentBlock{
				Type:      "tool_result",
				ToolUseID: result.ToolCallID,
				Content:   result.Content,
				IsError:   result.IsError,
			})
		}
		out = append(out, apiMessage{Role: m.Role, Content: blocks})
	}
	return out
}

func toAPITools(tools []assistant.ToolDef) []apiTool {
	out := make([]apiTool, 0, len(tools))
	for _, t := range tools {
		out = append(out, apiTool{Name: t.Name, Description: t.Description, InputSchema: t.InputSchema})
	}
	return out
}

func toModelReply(resp apiResponse) *assistant.ModelReply {
	reply := &assistant.ModelReply{StopReason: resp.StopReason}
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			reply.Text += block.Text
		case "tool_use":
			reply.ToolCalls = append(reply.ToolCalls, assistant.ToolCall{
				ID:    block.ID,
				Name:  block.Name,
				Input: block.Input,
			})
		}
	}
	return reply
}
