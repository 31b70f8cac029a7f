// Package library provides access to the user's saved-album library via
// the pathfinder API.
package library

import (
	"context"
	"fmt"

	"github.com/spotify-tools/spotify-mcp/internal/pathfinder"
)

// defaultPageSize is the window size used when a caller does not specify one.
const defaultPageSize = 25

// AlbumLister is the pathfinder client surface the manager depends on.
type AlbumLister interface {
	GetLibraryAlbums(ctx context.Context, window pathfinder.OffsetLimit) (pathfinder.Page[pathfinder.LibraryAlbum], error)
}

// Compile-time interface check.
var _ AlbumLister = (*pathfinder.Client)(nil)

// Manager exposes library operations on top of an AlbumLister.
type Manager struct {
	client AlbumLister
}

// NewManager returns a Manager backed by the provided client.
func NewManager(client AlbumLister) *Manager {
	if client == nil {
		panic("album lister must not be nil")
	}
	return &Manager{client: client}
}

// ListAlbums fetches one page of saved albums. A zero limit falls back to
// the default page size.
func (m *Manager) ListAlbums(ctx context.Context, offset, limit uint32) (pathfinder.Page[pathfinder.LibraryAlbum], error) {
	if limit == 0 {
		limit = defaultPageSize
	}
	page, err := m.client.GetLibraryAlbums(ctx, pathfinder.OffsetLimit{Offset: offset, Limit: limit})
	if err != nil {
		return pathfinder.Page[pathfinder.LibraryAlbum]{}, fmt.Errorf("library albums: %w", err)
	}
	return page, nil
}

// ListAllAlbums walks the whole library page by page, advancing the offset
// by the page size until totalCount is reached, and returns the collected
// albums. A zero pageSize falls back to the default page size. An empty
// page before totalCount is reached ends the walk early rather than
// looping forever.
func (m *Manager) ListAllAlbums(ctx context.Context, pageSize uint32) ([]pathfinder.LibraryAlbum, error) {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	var albums []pathfinder.LibraryAlbum
	var offset uint32

	for {
		page, err := m.client.GetLibraryAlbums(ctx, pathfinder.OffsetLimit{Offset: offset, Limit: pageSize})
		if err != nil {
			return nil, fmt.Errorf("library albums at offset %d: %w", offset, err)
		}

		albums = append(albums, page.Items...)

		if len(page.Items) == 0 {
			return albums, nil
		}
		offset += pageSize
		if uint64(offset) >= page.TotalCount {
			return albums, nil
		}
	}
}
