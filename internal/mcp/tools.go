package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchMoviesTool defines the search_movies MCP tool.
var searchMoviesTool = mcp.NewTool("search_movies",
	mcp.WithDescription("Search the movie catalog by title substring and/or genre. Returns matching movies with ratings."),
	mcp.WithString("query",
		mcp.Description("Substring to match against movie titles (case-insensitive)"),
	),
	mcp.WithString("genre",
		mcp.Description("Exact genre to filter by"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// getMovieTool defines the get_movie MCP tool.
var getMovieTool = mcp.NewTool("get_movie",
	mcp.WithDescription("Get a single movie by its numeric ID."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Movie ID"),
	),
)

// getStatsTool defines the get_stats MCP tool.
var getStatsTool = mcp.NewTool("get_stats",
	mcp.WithDescription("Get catalog statistics: total movies, average rating, and counts per genre."),
)
