package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pdsutils/internal/application"
	"pdsutils/internal/application/commands"
	"pdsutils/internal/domain"
	"pdsutils/internal/ports"
)

// RegisterScanTools adds the relative motion scan and the scan history tools
// to the MCP server. A nil history disables recording.
func RegisterScanTools(s *server.MCPServer, loader ports.TableLoader, history ports.ScanHistory, defaultRoot string) {
	s.AddTool(scanTool(), scanHandler(loader, history, defaultRoot))
	if history != nil {
		s.AddTool(historyTool(), historyHandler(history))
	}
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Find the maximum relative motion between adjacent rigid bodies across a grid of cases and realizations. Reads <root>/CaseNN/RealizationNNN/Results/<body>/position.dat."),
		mcp.WithString("root",
			mcp.Description("Results root folder. Defaults to the server's root."),
		),
		mcp.WithArray("cases",
			mcp.Description("Case numbers to scan (e.g. [1, 2, 3])"),
			mcp.Items(map[string]any{"type": "integer"}),
			mcp.Required(),
		),
		mcp.WithArray("realizations",
			mcp.Description("Realization numbers to scan in every case"),
			mcp.Items(map[string]any{"type": "integer"}),
			mcp.Required(),
		),
		mcp.WithArray("bodies",
			mcp.Description("Ordered body chain, e.g. [\"Walkway1\", \"Walkway2\"]. Adjacent bodies are compared."),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Required(),
		),
		mcp.WithNumber("start_time",
			mcp.Description("Seconds of warm-up to skip (default 0)"),
		),
		mcp.WithNumber("sample_interval",
			mcp.Description("Seconds between position.dat rows. Defaults to the configured interval."),
		),
		mcp.WithArray("axes",
			mcp.Description("Axes to scan: x, y, z, roll, pitch, yaw. Omit for all."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean("record",
			mcp.Description("Record the run in the scan history (default true)"),
		),
	)
}

func scanHandler(loader ports.TableLoader, history ports.ScanHistory, defaultRoot string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", defaultRoot)
		cases := req.GetIntSlice("cases", nil)
		reals := req.GetIntSlice("realizations", nil)
		bodies := req.GetStringSlice("bodies", nil)
		startTime := req.GetFloat("start_time", 0)

		cmd := commands.NewScanCommand(loader, root, cases, reals, bodies, startTime).
			WithAxes(req.GetStringSlice("axes", nil))
		if interval := req.GetFloat("sample_interval", 0); interval != 0 {
			cmd.WithSampleInterval(interval)
		}
		if history != nil && req.GetBool("record", true) {
			cmd.WithHistory(history)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteString("\n\n")
		sb.WriteString(application.FormatMotionReport(result.Stats))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("Browse recorded scans. action=list lists runs newest first, action=show prints one run's report, action=delete removes a run."),
		mcp.WithString("action",
			mcp.Description("One of list, show, delete"),
			mcp.Enum("list", "show", "delete"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("Run ID for show and delete"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to list (0 for all)"),
		),
	)
}

func historyHandler(history ports.ScanHistory) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action := req.GetString("action", "")
		id := req.GetString("id", "")

		switch action {
		case "list":
			result, err := commands.NewListRunsCommand(history, req.GetInt("limit", 0)).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			if len(result.Runs) == 0 {
				return mcp.NewToolResultText("No scans recorded."), nil
			}
			var sb strings.Builder
			for _, r := range result.Runs {
				sb.WriteString(formatSummary(r))
				sb.WriteString("\n")
			}
			return mcp.NewToolResultText(sb.String()), nil

		case "show":
			result, err := commands.NewShowRunCommand(history, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(formatRun(result.Run)), nil

		case "delete":
			result, err := commands.NewDeleteRunCommand(history, id).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("invalid action: %q (expected list, show, or delete)", action))
		}
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatSummary(r domain.RunSummary) string {
	return fmt.Sprintf("%s  %s  %dx%d realizations, %d bodies  %s",
		r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Cases, r.Reals, r.Bodies, r.Root)
}

func formatRun(run *domain.ScanRun) string {
	var sb strings.Builder
	p := run.Params
	fmt.Fprintf(&sb, "Scan %s (%s, took %s)\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Duration)
	fmt.Fprintf(&sb, "root: %s\n", p.Root)
	fmt.Fprintf(&sb, "cases: %v  realizations: %v\n", p.Cases, p.Realizations)
	fmt.Fprintf(&sb, "chain: %s\n", strings.Join(p.Chain, ", "))
	fmt.Fprintf(&sb, "start time: %gs  sample interval: %gs\n\n", p.StartTime, p.SampleInterval)
	sb.WriteString(application.FormatMotionReport(run.Stats))
	return sb.String()
}
