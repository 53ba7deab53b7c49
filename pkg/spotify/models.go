package spotify

// Image is cover art or a profile picture in one of several sizes.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Artist represents a catalog artist.
type Artist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Album represents a catalog album. Tracks is populated only on the
// full album endpoint.
type Album struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Artists     []Artist    `json:"artists"`
	Images      []Image     `json:"images"`
	ReleaseDate string      `json:"release_date"`
	Tracks      Page[Track] `json:"tracks"`
}

// Track represents a single track.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	DurationMS int      `json:"duration_ms"`
	Artists    []Artist `json:"artists"`
	Album      *Album   `json:"album,omitempty"`
}

// TopTracks is the response of the artist top-tracks endpoint.
type TopTracks struct {
	Tracks []Track `json:"tracks"`
}

// SavedAlbum is an album in the user's library.
type SavedAlbum struct {
	AddedAt string `json:"added_at"`
	Album   Album  `json:"album"`
}

// Playlist represents a playlist with its owner and track listing.
type Playlist struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Images []Image             `json:"images"`
	Owner  User                `json:"owner"`
	Tracks Page[PlaylistTrack] `json:"tracks"`
}

// PlaylistTrack is one entry of a playlist. Local files carry no
// catalog track data.
type PlaylistTrack struct {
	IsLocal bool  `json:"is_local"`
	Track   Track `json:"track"`
}

// User represents a user profile.
type User struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Images      []Image `json:"images"`
}

// Page is one window of a paginated listing.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchResults is the response of the search endpoint. Only the
// requested sections are present.
type SearchResults struct {
	Albums  *Page[Album]  `json:"albums,omitempty"`
	Artists *Page[Artist] `json:"artists,omitempty"`
}
