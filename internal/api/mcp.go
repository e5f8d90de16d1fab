package api

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Engine Answerer
}

// NewMCPServer creates an MCP server exposing the school Q&A pipeline as
// tools, so assistant clients can answer exam/timetable questions directly.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"dronacharya",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("dronacharya — answers school questions (exam schedules, syllabus, timetables, teachers) from per-grade spreadsheets."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_school",
			mcp.WithDescription("Answer a free-text school question, e.g. \"When is the SA1 maths exam for grade 7?\"."),
			mcp.WithString("query", mcp.Description("The question text"), mcp.Required()),
			mcp.WithString("grade", mcp.Description("Fallback grade when the question names none")),
		),
		mcpAsk(deps),
	)

	s.AddTool(
		mcp.NewTool("next_exam",
			mcp.WithDescription("List upcoming exams for a grade across all exam cycles."),
			mcp.WithString("grade", mcp.Description("Grade number, e.g. \"7\""), mcp.Required()),
			mcp.WithString("subject", mcp.Description("Optional subject filter")),
		),
		mcpNextExam(deps),
	)

	s.AddTool(
		mcp.NewTool("todays_timetable",
			mcp.WithDescription("Show today's class timetable for a grade."),
			mcp.WithString("grade", mcp.Description("Grade number, e.g. \"7\""), mcp.Required()),
		),
		mcpTodaysTimetable(deps),
	)

	return s
}

func mcpAsk(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}
		profile := map[string]string{}
		if grade := req.GetString("grade", ""); grade != "" {
			profile["grade"] = grade
		}
		reply, _ := deps.Engine.Answer(ctx, q, profile)
		return mcpText(reply), nil
	}
}

func mcpNextExam(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		grade, err := req.RequireString("grade")
		if err != nil {
			return mcpError("grade is required"), nil
		}
		q := fmt.Sprintf("when is the next exam for grade %s", grade)
		if subject := req.GetString("subject", ""); subject != "" {
			q = fmt.Sprintf("when is the next %s exam for grade %s", subject, grade)
		}
		reply, _ := deps.Engine.Answer(ctx, q, nil)
		return mcpText(reply), nil
	}
}

func mcpTodaysTimetable(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		grade, err := req.RequireString("grade")
		if err != nil {
			return mcpError("grade is required"), nil
		}
		q := fmt.Sprintf("show me today's timetable for grade %s", grade)
		reply, _ := deps.Engine.Answer(ctx, q, nil)
		return mcpText(reply), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
