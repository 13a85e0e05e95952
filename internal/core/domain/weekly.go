package domain

import "time"

// WeeklyDesigner records one week's featured designer pick.
type WeeklyDesigner struct {
	ID         string    `json:"id"`
	DesignerID string    `json:"designer_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}
