package pathfinder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Operation descriptor
// ---------------------------------------------------------------------------

func Test_LibraryAlbumsOperation_Descriptor(t *testing.T) {
	op := libraryAlbumsOperation{window: OffsetLimit{Offset: 50, Limit: 25}}

	if got := op.OperationName(); got != "fetchLibraryAlbums" {
		t.Errorf("OperationName() = %q, want %q", got, "fetchLibraryAlbums")
	}

	vars, ok := op.Variables().(OffsetLimit)
	if !ok {
		t.Fatalf("Variables() returned %T, want OffsetLimit", op.Variables())
	}
	if vars.Offset != 50 || vars.Limit != 25 {
		t.Errorf("Variables() = %+v, want offset=50 limit=25", vars)
	}

	ext, ok := op.Extensions().(PersistedQuery)
	if !ok {
		t.Fatalf("Extensions() returned %T, want PersistedQuery", op.Extensions())
	}
	if ext.Inner.Version != 1 {
		t.Errorf("persisted query version = %d, want 1", ext.Inner.Version)
	}
	if ext.Inner.SHA256Hash != libraryAlbumsHash {
		t.Errorf("persisted query hash = %q, want %q", ext.Inner.SHA256Hash, libraryAlbumsHash)
	}
	if len(ext.Inner.SHA256Hash) != 64 {
		t.Errorf("persisted query hash length = %d, want 64", len(ext.Inner.SHA256Hash))
	}
}

// ---------------------------------------------------------------------------
// GetLibraryAlbums
// ---------------------------------------------------------------------------

// libraryAlbumsEnvelope is a canned response with one saved album.
const libraryAlbumsEnvelope = `{
  "data": {
    "me": {
      "library": {
        "albums": {
          "items": [
            {
              "addedAt": {"isoString": "2020-11-07T03:27:58Z"},
              "album": {
                "_uri": "spotify:album:6G9fHYDCoyEErUkHrFYfs4",
                "data": {
                  "name": "Random Access Memories",
                  "artists": {
                    "items": [
                      {
                        "uri": "spotify:artist:4tZwfgrHOc3mvqYlEYSvVi",
                        "profile": {"name": "Daft Punk"}
                      }
                    ]
                  },
                  "coverArt": {
                    "sources": [
                      {"url": "https://i.scdn.co/image/ab67616d00001e02", "width": 300, "height": 300},
                      {"url": "https://i.scdn.co/image/ab67616d0000b273", "width": 640, "height": 640}
                    ]
                  },
                  "date": {"isoString": "2013-05-17T00:00:00Z"}
                }
              }
            }
          ],
          "pagingInfo": {"offset": 0, "limit": 25},
          "totalCount": 123
        }
      }
    }
  },
  "extensions": {}
}`

func Test_GetLibraryAlbums_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("operationName"); got != "fetchLibraryAlbums" {
			t.Errorf("operationName = %q, want fetchLibraryAlbums", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(libraryAlbumsEnvelope))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	page, err := client.GetLibraryAlbums(context.Background(), OffsetLimit{Offset: 0, Limit: 25})
	if err != nil {
		t.Fatalf("GetLibraryAlbums: %v", err)
	}

	if page.TotalCount != 123 {
		t.Errorf("TotalCount = %d, want 123", page.TotalCount)
	}
	if page.PagingInfo.Offset != 0 || page.PagingInfo.Limit != 25 {
		t.Errorf("PagingInfo = %+v, want offset=0 limit=25", page.PagingInfo)
	}
	if len(page.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(page.Items))
	}

	album := page.Items[0]

	wantAdded := time.Date(2020, 11, 7, 3, 27, 58, 0, time.UTC)
	if !album.AddedAt.Equal(wantAdded) {
		t.Errorf("AddedAt = %v, want %v", album.AddedAt.Time, wantAdded)
	}
	if album.Album.URI != "spotify:album:6G9fHYDCoyEErUkHrFYfs4" {
		t.Errorf("URI = %q", album.Album.URI)
	}
	if album.Album.Data.Name != "Random Access Memories" {
		t.Errorf("Name = %q", album.Album.Data.Name)
	}

	wantDate := time.Date(2013, 5, 17, 0, 0, 0, 0, time.UTC)
	if !album.Album.Data.Date.Equal(wantDate) {
		t.Errorf("Date = %v, want %v", album.Album.Data.Date.Time, wantDate)
	}

	if len(album.Album.Data.Artists.Items) != 1 {
		t.Fatalf("len(Artists) = %d, want 1", len(album.Album.Data.Artists.Items))
	}
	artist := album.Album.Data.Artists.Items[0]
	if artist.URI != "spotify:artist:4tZwfgrHOc3mvqYlEYSvVi" {
		t.Errorf("artist URI = %q", artist.URI)
	}
	if artist.Profile.Name != "Daft Punk" {
		t.Errorf("artist name = %q", artist.Profile.Name)
	}

	sources := album.Album.Data.CoverArt.Sources
	if len(sources) != 2 {
		t.Fatalf("len(Sources) = %d, want 2", len(sources))
	}
	if sources[1].Width != 640 || sources[1].Height != 640 {
		t.Errorf("second source = %dx%d, want 640x640", sources[1].Width, sources[1].Height)
	}
}

func Test_GetLibraryAlbums_EmptyPage(t *testing.T) {
	const empty = `{"data":{"me":{"library":{"albums":{"items":[],"pagingInfo":{"offset":0,"limit":25},"totalCount":0}}}},"extensions":{}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(empty))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	page, err := client.GetLibraryAlbums(context.Background(), OffsetLimit{Offset: 0, Limit: 25})
	if err != nil {
		t.Fatalf("GetLibraryAlbums: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(page.Items))
	}
	if page.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", page.TotalCount)
	}
	if page.PagingInfo.Limit != 25 {
		t.Errorf("PagingInfo.Limit = %d, want 25", page.PagingInfo.Limit)
	}
}

func Test_GetLibraryAlbums_IndependentResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(libraryAlbumsEnvelope))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)

	first, err := client.GetLibraryAlbums(context.Background(), OffsetLimit{Offset: 0, Limit: 25})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := client.GetLibraryAlbums(context.Background(), OffsetLimit{Offset: 0, Limit: 25})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first.Items[0].Album.Data.Name != second.Items[0].Album.Data.Name {
		t.Errorf("results differ: %q vs %q", first.Items[0].Album.Data.Name, second.Items[0].Album.Data.Name)
	}

	// Mutating one result must not affect the other.
	first.Items[0].Album.Data.Name = "mutated"
	if second.Items[0].Album.Data.Name != "Random Access Memories" {
		t.Error("second result shares state with the first")
	}
}
