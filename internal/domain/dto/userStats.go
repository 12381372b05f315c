package dto

// UserStats is the on-demand aggregation over a user's attended events and
// comments. It is recomputed on every call, never persisted.
type UserStats struct {
	TotalEvents    int
	UpcomingEvents int
	PastEvents     int
	TotalComments  int
	AverageRating  float64
}
