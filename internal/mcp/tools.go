package mcp

import "github.com/mark3labs/mcp-go/mcp"

// generatePlanTool defines the generate_travel_plan MCP tool.
var generatePlanTool = mcp.NewTool("generate_travel_plan",
	mcp.WithDescription("Generate a day-by-day travel itinerary in Markdown for a destination."),
	mcp.WithString("days",
		mcp.Required(),
		mcp.Description("Number of travel days, e.g. \"3\""),
	),
	mcp.WithString("destination",
		mcp.Required(),
		mcp.Description("City, region or country to visit"),
	),
	mcp.WithString("budget",
		mcp.Description("Optional budget, e.g. \"1500 EUR\""),
	),
	mcp.WithString("preferences",
		mcp.Description("Optional interests such as food, museums or hiking"),
	),
)

// webSearchTool defines the web_search MCP tool.
var webSearchTool = mcp.NewTool("web_search",
	mcp.WithDescription("Search the web and return a summary with numbered reference links."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("What to search for"),
	),
)
