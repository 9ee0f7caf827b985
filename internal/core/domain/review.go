package domain

import (
	"strconv"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating and comment on a movie. UserName is copied from the
// author at creation time.
type Review struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserName  string    `json:"user_name" bson:"user_name"`
	MovieID   string    `json:"movie_id" bson:"movie_id"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ValidRating reports whether r is within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// AverageRating returns the arithmetic mean of ratings rounded to one decimal
// place. The float64 mean itself is rounded, so 1.05 (stored slightly above)
// becomes 1.1 and 1.15 (stored slightly below) becomes 1.1. Exact ties go to
// the even tenth. An empty slice averages to 0.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(mean, 'f', 1, 64), 64)
	return rounded
}
