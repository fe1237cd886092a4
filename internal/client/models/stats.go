package models

// Counter names one of the dashboard aggregates. The value is the path
// suffix of its endpoint, /api/admin/total-{counter}.
type Counter string

const (
	CounterUsers    Counter = "users"
	CounterRecipes  Counter = "recipes"
	CounterComments Counter = "comments"
	CounterLikes    Counter = "likes"
)

// Counters lists the dashboard aggregates in display order.
var Counters = []Counter{CounterUsers, CounterRecipes, CounterComments, CounterLikes}

// Label is the chart label of the counter.
func (c Counter) Label() string {
	switch c {
	case CounterUsers:
		return "Users"
	case CounterRecipes:
		return "Recipes"
	case CounterComments:
		return "Comments"
	case CounterLikes:
		return "Likes"
	}
	return string(c)
}

// Color is the chart bar color of the counter.
func (c Counter) Color() string {
	switch c {
	case CounterUsers:
		return "#007bff"
	case CounterRecipes:
		return "#28a745"
	case CounterComments:
		return "#ffc107"
	case CounterLikes:
		return "#dc3545"
	}
	return "#6c757d"
}

// Stats holds one snapshot of the four dashboard counters.
type Stats struct {
	Users    int64
	Recipes  int64
	Comments int64
	Likes    int64
}

// Get returns the value of counter c.
func (s Stats) Get(c Counter) int64 {
	switch c {
	case CounterUsers:
		return s.Users
	case CounterRecipes:
		return s.Recipes
	case CounterComments:
		return s.Comments
	case CounterLikes:
		return s.Likes
	}
	return 0
}

// Set stores v as the value of counter c.
func (s *Stats) Set(c Counter, v int64) {
	switch c {
	case CounterUsers:
		s.Users = v
	case CounterRecipes:
		s.Recipes = v
	case CounterComments:
		s.Comments = v
	case CounterLikes:
		s.Likes = v
	}
}
