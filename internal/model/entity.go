package model

// Resource identifies what an access decision was about
type Resource struct {
	Type string
	ID   string
}

// Subject identifies who an access decision was about
type Subject struct {
	ID   string
	Role Role
}
