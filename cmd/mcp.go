package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/moodscope/analyzer"
	"github.com/tsingjyujing/moodscope/controller"
	"github.com/tsingjyujing/moodscope/utils"
)

type AnalyzeMoodOutput struct {
	Report *analyzer.Report `json:"report" jsonschema:"the mood report of the text"`
}

// MoodscopeMCP forwards tool calls to a running moodscope server.
type MoodscopeMCP struct {
	client   *http.Client
	endpoint url.URL
	token    string
}

func (m MoodscopeMCP) GetUrl(relativePath string) (*url.URL, error) {
	u, err := url.Parse(relativePath)
	if err != nil {
		return nil, err
	}
	return m.endpoint.ResolveReference(u), nil
}

func (m MoodscopeMCP) AnalyzeMood(ctx context.Context, req *mcp.CallToolRequest, input controller.AnalyzeParams) (*mcp.CallToolResult, AnalyzeMoodOutput, error) {
	analyzeUrl, err := m.GetUrl("/api/v1/analyze")
	if err != nil {
		return nil, AnalyzeMoodOutput{}, err
	}
	body, err := json.Marshal(input)
	if err != nil {
		return nil, AnalyzeMoodOutput{}, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, analyzeUrl.String(), bytes.NewReader(body))
	if err != nil {
		return nil, AnalyzeMoodOutput{}, err
	}
	request.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		request.Header.Set("Authorization", "Bearer "+m.token)
	}
	resp, err := m.client.Do(request)
	if err != nil {
		return nil, AnalyzeMoodOutput{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var status utils.StatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil || status.Status == "" {
			return nil, AnalyzeMoodOutput{}, fmt.Errorf("moodscope server answered %s", resp.Status)
		}
		return nil, AnalyzeMoodOutput{}, fmt.Errorf("moodscope server answered %s: %s", resp.Status, status.Status)
	}
	var report analyzer.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, AnalyzeMoodOutput{}, err
	}
	return nil, AnalyzeMoodOutput{Report: &report}, nil
}

func NewMcpCommand(version string) *cobra.Command {
	var moodscopeEndpoint string
	var token string

	mcpCommand := &cobra.Command{
		Use:   "mcp",
		Short: "Starting MCP server",
		Run: func(cmd *cobra.Command, args []string) {
			parsedURL, err := url.Parse(moodscopeEndpoint)
			if err != nil {
				logger.Fatalf("Invalid moodscope endpoint URL: %v", err)
			}
			m := MoodscopeMCP{
				client:   http.DefaultClient,
				endpoint: *parsedURL,
				token:    token,
			}
			server := mcp.NewServer(&mcp.Implementation{Name: "moodscope-mcp", Title: "MCP server for analyzing the mood of texts with moodscope", Version: version}, nil)
			mcp.AddTool(server, &mcp.Tool{
				Name:        "analyze_mood",
				Description: "Analyze the mood of a text in any language, returns the detected language, VADER scores and a plain-language mood report",
			}, m.AnalyzeMood)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				logger.Fatal(err)
			}
		},
	}
	mcpCommand.Flags().StringVarP(
		&moodscopeEndpoint,
		"endpoint",
		"e", "http://localhost:8080",
		"moodscope server endpoint URL",
	)
	mcpCommand.Flags().StringVarP(&token, "token", "t", "", "Bearer token for the moodscope server")
	return mcpCommand
}
