// Package gallery defines the normalized records a gallery browser feeds
// the grid engine, plus the search-string tokenizing that selects them.
//
// Nothing here touches a database or the file system; collaborators scan
// and persist, this package only shapes records and query strings.
package gallery

// Summary is the normalized description of one gallery in a listing.
type Summary struct {
	ID         int64
	TitleEN    string
	TitleJP    string
	Category   string
	PageCount  int64
	Rating     float64
	ThumbPath  string
	FolderName string
	Path       string
}

// Folder is one node of the folder tree, rendered ahead of the packed
// galleries.
type Folder struct {
	Name        string
	Path        string
	HasChildren bool
}

// TagEntry is a namespaced tag attached to a gallery.
type TagEntry struct {
	Namespace string
	Tag       string
}

// TagFilter selects galleries carrying an exact namespaced tag.
type TagFilter struct {
	Namespace string
	Tag       string
}

// SortBy values accepted by a search, mirroring the backing store's
// supported sort columns. Anything else falls back to scan order.
const (
	SortByRating = "rating"
	SortByPages  = "pages"
	SortByPosted = "posted"
	SortByTitle  = "title"
)

// SearchQuery is a parsed search request.
type SearchQuery struct {
	Text      string
	Tags      []TagFilter
	Category  string
	Language  string
	SortBy    string
	SortOrder string
	Offset    int64
	Limit     int64
}
