package domain

import "time"

// Movie is a catalog entry. RatingAvg and RatingCount are denormalized from reviews.
type Movie struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Genre       []string  `json:"genre" bson:"genre"`
	Year        int       `json:"year" bson:"year"`
	Duration    int       `json:"duration" bson:"duration"`
	PosterURL   string    `json:"poster_url" bson:"poster_url"`
	TrailerURL  string    `json:"trailer_url" bson:"trailer_url"`
	RatingAvg   float64   `json:"rating_avg" bson:"rating_avg"`
	RatingCount int       `json:"rating_count" bson:"rating_count"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// MovieFilter narrows a catalog listing. Empty fields are ignored.
type MovieFilter struct {
	Search string
	Genre  string
	Limit  int
}
