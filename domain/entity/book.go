package entity

type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	AuthorID      int64  `json:"author_id"`
	PublishedYear int    `json:"published_year"`
	Category      string `json:"category"`
}
