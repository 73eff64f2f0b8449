package model

// JobApplication is one card on the application tracker board.
type JobApplication struct {
	ID      string `json:"id" bson:"id"`
	Company string `json:"company" bson:"company"`
	Role    string `json:"role" bson:"role"`
	Logo    string `json:"logo" bson:"logo"`
	DaysAgo int    `json:"days_ago" bson:"daysAgo"`
	Status  string `json:"status" bson:"status"` // "active" or "stagnant"
}

// TrackerColumn is one column of the kanban board.
type TrackerColumn struct {
	ID    string           `json:"id" bson:"id"`
	Title string           `json:"title" bson:"title"`
	Color string           `json:"color" bson:"color"`
	Items []JobApplication `json:"items" bson:"items"`
}

// TrackerData is the whole application tracker board.
type TrackerData struct {
	Columns     map[string]TrackerColumn `json:"columns" bson:"columns"`
	ColumnOrder []string                 `json:"column_order" bson:"columnOrder"`
}
