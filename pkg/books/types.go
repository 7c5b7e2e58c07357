package books

import "strings"

// Default values substituted when the lookup response omits a field.
const (
	DefaultTitle     = "Unknown Title"
	DefaultAuthor    = "Unknown Author"
	DefaultPublisher = "Unknown Publisher"
	DefaultDate      = "Unknown Date"
	NoCover          = "No cover available"
)

// Book is the flat record produced by one lookup. It lives only for the
// duration of a single enrichment and is never persisted.
type Book struct {
	Title         string
	Author        string
	Publisher     string
	PageCount     int
	PublishedDate string
	CoverURL      string
}

// volumesResponse matches the volumes endpoint payload shape.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	VolumeInfo *VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo carries the per-volume metadata returned by the lookup service.
type VolumeInfo struct {
	Title         string      `json:"title"`
	Authors       []string    `json:"authors"`
	Publisher     string      `json:"publisher"`
	PageCount     int         `json:"pageCount"`
	PublishedDate string      `json:"publishedDate"`
	ImageLinks    *ImageLinks `json:"imageLinks"`
}

// ImageLinks holds the cover image links of a volume.
type ImageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

// FromVolumeInfo maps volume metadata into a Book, substituting defaults for
// absent fields. Multiple authors are joined with ", " into a single string.
// A thumbnail link is upgraded from zoom=1 to zoom=5 when that query value is
// present; otherwise the link is used as-is.
func FromVolumeInfo(vi *VolumeInfo) Book {
	book := Book{
		Title:         DefaultTitle,
		Author:        DefaultAuthor,
		Publisher:     DefaultPublisher,
		PageCount:     0,
		PublishedDate: DefaultDate,
		CoverURL:      NoCover,
	}
	if vi == nil {
		return book
	}

	if vi.Title != "" {
		book.Title = vi.Title
	}
	if len(vi.Authors) > 0 {
		book.Author = strings.Join(vi.Authors, ", ")
	}
	if vi.Publisher != "" {
		book.Publisher = vi.Publisher
	}
	if vi.PageCount > 0 {
		book.PageCount = vi.PageCount
	}
	if vi.PublishedDate != "" {
		book.PublishedDate = vi.PublishedDate
	}
	if vi.ImageLinks != nil && vi.ImageLinks.Thumbnail != "" {
		book.CoverURL = strings.Replace(vi.ImageLinks.Thumbnail, "zoom=1", "zoom=5", 1)
	}

	return book
}
