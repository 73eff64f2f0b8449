package model

// Resume is stored metadata for an uploaded resume. The PDF itself
// lives on disk under the data directory.
type Resume struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	Date      string `json:"date" bson:"date"`
	IsDefault bool   `json:"is_default" bson:"isDefault"`
}
