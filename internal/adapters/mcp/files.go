package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pdsutils/internal/application/commands"
	"pdsutils/internal/domain"
	"pdsutils/internal/ports"
)

// RegisterFileTools adds the simulator file editing tools to the MCP server.
func RegisterFileTools(s *server.MCPServer, files ports.TextFiles) {
	s.AddTool(patchPropertyTool(), patchPropertyHandler(files))
	s.AddTool(duplicateBodyTool(), duplicateBodyHandler(files))
	s.AddTool(listFilesTool(), listFilesHandler())
}

// --- patch_property ---

func patchPropertyTool() mcp.Tool {
	return mcp.NewTool("patch_property",
		mcp.WithDescription("Check a `key value` property in simulator sim/ini files and set it to the expected value where it differs."),
		mcp.WithString("property",
			mcp.Description("Property name, e.g. Mass"),
			mcp.Required(),
		),
		mcp.WithString("expected",
			mcp.Description("Expected value (integer, float or a single word)"),
			mcp.Required(),
		),
		mcp.WithArray("files",
			mcp.Description("Files to check, in order"),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Required(),
		),
		mcp.WithBoolean("correct",
			mcp.Description("Rewrite differing values (default true). false only reports."),
		),
	)
}

func patchPropertyHandler(files ports.TextFiles) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		property := req.GetString("property", "")
		expected := domain.ParseValue(req.GetString("expected", ""))
		paths := req.GetStringSlice("files", nil)

		cmd := commands.NewPatchPropertyCommand(files, property, expected, paths).
			WithCorrect(req.GetBool("correct", true))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range result.Reports {
			fmt.Fprintf(&sb, "%-12s %s\n", r.Outcome, r.Message)
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- duplicate_body ---

func duplicateBodyTool() mcp.Tool {
	return mcp.NewTool("duplicate_body",
		mcp.WithDescription("Duplicate a rigid body n times. Copies <body>.ini, writes <body>.dat states offset by the increment, and registers the copies in sim.ini."),
		mcp.WithString("folder",
			mcp.Description("Folder holding sim.ini and the body files"),
			mcp.Required(),
		),
		mcp.WithString("body",
			mcp.Description("Body to duplicate, e.g. Walkway3"),
			mcp.Required(),
		),
		mcp.WithNumber("count",
			mcp.Description("Number of copies"),
			mcp.Required(),
		),
		mcp.WithArray("increment",
			mcp.Description("Position increment per copy: [x, y, z, rx, ry, rz]"),
			mcp.Items(map[string]any{"type": "number"}),
			mcp.Required(),
		),
	)
}

func duplicateBodyHandler(files ports.TextFiles) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		incr, err := domain.Vector6FromSlice(req.GetFloatSlice("increment", nil))
		if err != nil {
			return toolError(fmt.Errorf("increment: %w", err))
		}

		cmd := commands.NewDuplicateBodyCommand(files,
			req.GetString("folder", ""),
			req.GetString("body", ""),
			req.GetInt("count", 0),
			incr,
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for i, name := range result.Created {
			fmt.Fprintf(&sb, "%s  %s\n", name, result.Positions[i])
		}
		sb.WriteString(result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_files ---

func listFilesTool() mcp.Tool {
	return mcp.NewTool("list_files",
		mcp.WithDescription("List the path of a file in every realization folder: <base>/CaseNN/RealizationNNN/<file>."),
		mcp.WithString("base",
			mcp.Description("Base folder holding the Case folders"),
			mcp.Required(),
		),
		mcp.WithString("file",
			mcp.Description("File name relative to each realization folder"),
			mcp.Required(),
		),
		mcp.WithNumber("cases",
			mcp.Description("Number of cases"),
			mcp.Required(),
		),
		mcp.WithNumber("realizations",
			mcp.Description("Number of realizations per case"),
			mcp.Required(),
		),
	)
}

func listFilesHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewFileListCommand(
			req.GetString("base", ""),
			req.GetString("file", ""),
			req.GetInt("cases", 0),
			req.GetInt("realizations", 0),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(strings.Join(result.Paths, "\n")), nil
	}
}
