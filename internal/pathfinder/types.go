// Package pathfinder implements a typed client for the Spotify partner
// GraphQL API ("pathfinder"). The API uses the persisted-query convention:
// instead of query text, each call carries the name and SHA-256 hash of a
// query pre-registered on the server, and all request data travels in the
// URL query string of an empty-bodied POST.
package pathfinder

// Operation describes one persisted GraphQL operation: its registered name,
// its variables payload and its extensions payload. One implementation
// exists per remote query; adding a query means adding a descriptor plus
// its response shape graph, with no change to the executor.
type Operation interface {
	// OperationName returns the server-registered operation name, used
	// verbatim in the query string.
	OperationName() string

	// Variables returns the JSON-serializable variables payload.
	Variables() any

	// Extensions returns the JSON-serializable extensions payload,
	// normally a PersistedQuery carrying the operation's hash.
	Extensions() any
}

// PersistedQuery is the request-side extensions payload identifying a
// pre-registered query by hash.
type PersistedQuery struct {
	Inner PersistedQueryBody `json:"persistedQuery"`
}

// PersistedQueryBody carries the persisted-query version and hash. The hash
// must exactly match what the server has registered for the operation name,
// or the call fails server-side.
type PersistedQueryBody struct {
	Version    uint32 `json:"version"`
	SHA256Hash string `json:"sha256Hash"`
}

// NewPersistedQuery returns a PersistedQuery for the given version and
// 64-hex-char hash.
func NewPersistedQuery(version uint32, sha256Hash string) PersistedQuery {
	return PersistedQuery{
		Inner: PersistedQueryBody{
			Version:    version,
			SHA256Hash: sha256Hash,
		},
	}
}

// OffsetLimit is a pagination window. It is sent as request variables and
// echoed back inside a page's pagingInfo. Callers are responsible for
// keeping limit > 0.
type OffsetLimit struct {
	Offset uint32 `json:"offset"`
	Limit  uint32 `json:"limit"`
}

// envelope is the outer {data, extensions} object wrapping every GraphQL
// HTTP response. The server-side extensions (tracing/debug info, unrelated
// to the request-side PersistedQuery) are parsed and discarded. Data is a
// pointer so a missing "data" field is distinguishable from a zero value.
type envelope[T any] struct {
	Data       *T             `json:"data"`
	Extensions map[string]any `json:"extensions"`
}

// Me wraps the single "me" field of a viewer-scoped response.
type Me[T any] struct {
	Me T `json:"me"`
}

// Library wraps the single "library" field of a user-library response.
type Library[T any] struct {
	Library T `json:"library"`
}

// Albums wraps the single "albums" field of a library response.
type Albums[T any] struct {
	Albums T `json:"albums"`
}

// Items wraps a bare "items" list.
type Items[T any] struct {
	Items []T `json:"items"`
}

// Page is one window of a paginated collection. PagingInfo echoes the
// OffsetLimit the server applied and TotalCount is the number of items
// available server-side, so a caller can keep requesting pages with
// offset += limit while offset < totalCount.
type Page[T any] struct {
	Items      []T         `json:"items"`
	PagingInfo OffsetLimit `json:"pagingInfo"`
	TotalCount uint64      `json:"totalCount"`
}
