package spotify

import "net/http"

// playlistFields trims the playlist payload down to what the models
// actually consume.
const playlistFields = "id,name,images,owner,tracks(total,items(is_local,track(name,id,duration_ms,artists(name,id),album(name,id,images,artists))))"

// GetArtist fetches a single artist.
func (c *Client) GetArtist(id string) *Request[Artist] {
	return newRequest[Artist](c).
		Method(http.MethodGet).
		URI("/v1/artists/"+id, "")
}

// GetArtistAlbums fetches one page of an artist's albums and singles.
func (c *Client) GetArtistAlbums(id string, offset, limit int) *Request[Page[Album]] {
	query := new(Params).
		Add("include_groups", "album,single").
		Add("country", "from_token").
		AddInt("offset", offset).
		AddInt("limit", limit).
		Encode()

	return newRequest[Page[Album]](c).
		Method(http.MethodGet).
		URI("/v1/artists/"+id+"/albums", query)
}

// GetArtistTopTracks fetches an artist's top tracks in the user's
// market.
func (c *Client) GetArtistTopTracks(id string) *Request[TopTracks] {
	query := new(Params).
		Add("market", "from_token").
		Encode()

	return newRequest[TopTracks](c).
		Method(http.MethodGet).
		URI("/v1/artists/"+id+"/top-tracks", query)
}

// GetAlbum fetches a single album with its track listing.
func (c *Client) GetAlbum(id string) *Request[Album] {
	return newRequest[Album](c).
		Method(http.MethodGet).
		URI("/v1/albums/"+id, "")
}

// IsAlbumSaved checks whether an album is in the user's library.
func (c *Client) IsAlbumSaved(id string) *Request[[]bool] {
	query := new(Params).Add("ids", id).Encode()
	return newRequest[[]bool](c).
		Method(http.MethodGet).
		URI("/v1/me/albums/contains", query)
}

// SaveAlbum adds an album to the user's library. Send with SendNoBody;
// only the status matters.
func (c *Client) SaveAlbum(id string) *Request[struct{}] {
	query := new(Params).Add("ids", id).Encode()
	return newRequest[struct{}](c).
		Method(http.MethodPut).
		URI("/v1/me/albums", query)
}

// RemoveSavedAlbum removes an album from the user's library.
func (c *Client) RemoveSavedAlbum(id string) *Request[struct{}] {
	query := new(Params).Add("ids", id).Encode()
	return newRequest[struct{}](c).
		Method(http.MethodDelete).
		URI("/v1/me/albums", query)
}

// GetSavedAlbums fetches one page of the user's saved albums.
func (c *Client) GetSavedAlbums(offset, limit int) *Request[Page[SavedAlbum]] {
	query := new(Params).
		AddInt("offset", offset).
		AddInt("limit", limit).
		Encode()

	return newRequest[Page[SavedAlbum]](c).
		Method(http.MethodGet).
		URI("/v1/me/albums", query)
}

// GetPlaylist fetches a playlist, projected down to playlistFields.
func (c *Client) GetPlaylist(id string) *Request[Playlist] {
	query := new(Params).
		Add("fields", playlistFields).
		Encode()

	return newRequest[Playlist](c).
		Method(http.MethodGet).
		URI("/v1/playlists/"+id, query)
}

// GetPlaylistTracks fetches one page of a playlist's tracks.
func (c *Client) GetPlaylistTracks(id string, offset, limit int) *Request[Page[PlaylistTrack]] {
	query := new(Params).
		AddInt("offset", offset).
		AddInt("limit", limit).
		Encode()

	return newRequest[Page[PlaylistTrack]](c).
		Method(http.MethodGet).
		URI("/v1/playlists/"+id+"/tracks", query)
}

// GetSavedPlaylists fetches one page of the user's playlists.
func (c *Client) GetSavedPlaylists(offset, limit int) *Request[Page[Playlist]] {
	query := new(Params).
		AddInt("offset", offset).
		AddInt("limit", limit).
		Encode()

	return newRequest[Page[Playlist]](c).
		Method(http.MethodGet).
		URI("/v1/me/playlists", query)
}

// Search searches the catalog for albums and artists.
func (c *Client) Search(query string, offset, limit int) *Request[SearchResults] {
	search := SearchQuery{
		Query:  query,
		Types:  []SearchType{SearchTypeAlbum, SearchTypeArtist},
		Offset: offset,
		Limit:  limit,
	}

	return newRequest[SearchResults](c).
		Method(http.MethodGet).
		URI("/v1/search", search.Encode())
}

// GetUser fetches a user profile.
func (c *Client) GetUser(id string) *Request[User] {
	return newRequest[User](c).
		Method(http.MethodGet).
		URI("/v1/users/"+id, "")
}

// GetUserPlaylists fetches one page of a user's public playlists.
func (c *Client) GetUserPlaylists(id string, offset, limit int) *Request[Page[Playlist]] {
	query := new(Params).
		AddInt("offset", offset).
		AddInt("limit", limit).
		Encode()

	return newRequest[Page[Playlist]](c).
		Method(http.MethodGet).
		URI("/v1/users/"+id+"/playlists", query)
}
