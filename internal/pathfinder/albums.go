package pathfinder

import "context"

// Hash registered server-side for the fetchLibraryAlbums persisted query.
const libraryAlbumsHash = "e18c65b7c99cd9c92545c6aa7d463170760bed0123ac01d85caca1fc3ff2ab67"

// libraryAlbumsOperation is the descriptor for the fetchLibraryAlbums
// query. Its variables are the requested pagination window.
type libraryAlbumsOperation struct {
	window OffsetLimit
}

func (o libraryAlbumsOperation) OperationName() string {
	return "fetchLibraryAlbums"
}

func (o libraryAlbumsOperation) Variables() any {
	return o.window
}

func (o libraryAlbumsOperation) Extensions() any {
	return NewPersistedQuery(1, libraryAlbumsHash)
}

// libraryAlbumsData is the nesting path of the fetchLibraryAlbums response.
type libraryAlbumsData = Me[Library[Albums[Page[LibraryAlbum]]]]

// LibraryAlbum is one saved-album record in the user's library.
type LibraryAlbum struct {
	AddedAt ISOTime `json:"addedAt"`
	Album   Album   `json:"album"`
}

// Album pairs a stable catalog URI with the album's display data.
type Album struct {
	URI  string    `json:"_uri"`
	Data AlbumData `json:"data"`
}

// AlbumData holds the album's name, artists, cover art and release date.
type AlbumData struct {
	Name     string        `json:"name"`
	Artists  Items[Artist] `json:"artists"`
	CoverArt CoverArt      `json:"coverArt"`
	Date     ISOTime       `json:"date"`
}

// Artist is one artist entry on an album.
type Artist struct {
	URI     string        `json:"uri"`
	Profile ArtistProfile `json:"profile"`
}

// ArtistProfile carries the artist's display name.
type ArtistProfile struct {
	Name string `json:"name"`
}

// CoverArt is the list of available cover image renditions.
type CoverArt struct {
	Sources []CoverArtSource `json:"sources"`
}

// CoverArtSource is one cover image rendition with its pixel dimensions.
type CoverArtSource struct {
	URL    string `json:"url"`
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

// GetLibraryAlbums fetches one page of the user's saved albums. The
// returned page echoes the applied window and carries the total number of
// saved albums, so callers can walk the library with offset += limit while
// offset < totalCount.
func (c *Client) GetLibraryAlbums(ctx context.Context, window OffsetLimit) (Page[LibraryAlbum], error) {
	data, err := Execute[libraryAlbumsData](ctx, c, libraryAlbumsOperation{window: window})
	if err != nil {
		return Page[LibraryAlbum]{}, err
	}
	return data.Me.Library.Albums, nil
}
