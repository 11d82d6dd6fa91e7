package models

// Department groups employees under a unique name
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
