package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spotify-tools/spotify-mcp/internal/audit"
	"github.com/spotify-tools/spotify-mcp/internal/pathfinder"
	"github.com/spotify-tools/spotify-mcp/internal/tools"
)

// LibraryTools returns a slice of tool registrations for saved-album
// access. It exposes library_albums (one page) and library_albums_all
// (full library walk); both are read-only.
func LibraryTools(mgr *Manager, auditLog *audit.Logger) []tools.Registration {
	return []tools.Registration{
		toolLibraryAlbums(mgr, auditLog),
		toolLibraryAlbumsAll(mgr, auditLog),
	}
}

// artistNames joins the display names of an album's artists.
func artistNames(album pathfinder.LibraryAlbum) string {
	names := make([]string, len(album.Album.Data.Artists.Items))
	for i, a := range album.Album.Data.Artists.Items {
		names[i] = a.Profile.Name
	}
	return strings.Join(names, ", ")
}

// formatAlbum renders a single saved album as a human-readable string.
func formatAlbum(album pathfinder.LibraryAlbum) string {
	return fmt.Sprintf("%s — %s\n  Released: %s\n  Added: %s\n  URI: %s",
		album.Album.Data.Name,
		artistNames(album),
		album.Album.Data.Date.Format("2006-01-02"),
		album.AddedAt.Format(time.RFC3339),
		album.Album.URI,
	)
}

// formatAlbumList renders a list of albums with a count header.
func formatAlbumList(albums []pathfinder.LibraryAlbum, header string) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, a := range albums {
		sb.WriteString("\n\n")
		sb.WriteString(formatAlbum(a))
	}
	return sb.String()
}

// toolLibraryAlbums constructs the library_albums Registration.
func toolLibraryAlbums(mgr *Manager, auditLog *audit.Logger) tools.Registration {
	const toolName = "library_albums"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List one page of the user's saved Spotify albums. Returns album names, artists, release dates and paging info."),
		mcp.WithNumber("offset",
			mcp.Description("Index of the first album to return (default: 0)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of albums to return (default: 25)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		offset := req.GetInt("offset", 0)
		limit := req.GetInt("limit", defaultPageSize)

		params := map[string]any{
			"offset": offset,
			"limit":  limit,
		}

		if offset < 0 || limit <= 0 {
			msg := fmt.Sprintf("offset must be >= 0 and limit must be > 0 (got offset=%d, limit=%d)", offset, limit)
			tools.LogAudit(auditLog, toolName, params, "error: "+msg, start)
			return tools.ErrorResult(msg), nil
		}

		page, err := mgr.ListAlbums(ctx, uint32(offset), uint32(limit))
		if err != nil {
			tools.LogAudit(auditLog, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		if len(page.Items) == 0 {
			tools.LogAudit(auditLog, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText(fmt.Sprintf("No saved albums in this window (total saved: %d).", page.TotalCount)), nil
		}

		header := fmt.Sprintf("Saved albums %d–%d of %d:",
			page.PagingInfo.Offset+1,
			page.PagingInfo.Offset+uint32(len(page.Items)),
			page.TotalCount,
		)

		tools.LogAudit(auditLog, toolName, params, "ok", start)
		return mcp.NewToolResultText(formatAlbumList(page.Items, header)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

// toolLibraryAlbumsAll constructs the library_albums_all Registration.
func toolLibraryAlbumsAll(mgr *Manager, auditLog *audit.Logger) tools.Registration {
	const toolName = "library_albums_all"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("List every saved Spotify album by walking the library page by page. May issue multiple API requests for large libraries."),
		mcp.WithNumber("page_size",
			mcp.Description("Number of albums fetched per request (default: 25, max: 100)"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		pageSize := req.GetInt("page_size", defaultPageSize)

		params := map[string]any{
			"page_size": pageSize,
		}

		if pageSize <= 0 || pageSize > 100 {
			msg := fmt.Sprintf("page_size must be between 1 and 100 (got %d)", pageSize)
			tools.LogAudit(auditLog, toolName, params, "error: "+msg, start)
			return tools.ErrorResult(msg), nil
		}

		albums, err := mgr.ListAllAlbums(ctx, uint32(pageSize))
		if err != nil {
			tools.LogAudit(auditLog, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		if len(albums) == 0 {
			tools.LogAudit(auditLog, toolName, params, "ok: empty", start)
			return mcp.NewToolResultText("No saved albums."), nil
		}

		header := fmt.Sprintf("All %d saved albums:", len(albums))

		tools.LogAudit(auditLog, toolName, params, "ok", start)
		return mcp.NewToolResultText(formatAlbumList(albums, header)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
