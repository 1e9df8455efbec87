package models

import (
	"time"
)

type Category string

const (
	CategoryWB      Category = "WB"
	CategoryCentral Category = "CENTRAL"
	CategoryOther   Category = "OTHER"
)

// Categories lists every bucket in report order.
var Categories = []Category{CategoryWB, CategoryCentral, CategoryOther}

// DateLayout is the civil-date format of added_on.
const DateLayout = "2006-01-02"

// SentinelDate stands in for a missing or unreadable added_on.
const SentinelDate = "1970-01-01"

// NoLastDate is shown when no application deadline could be found.
const NoLastDate = "Check Link"

type Job struct {
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Category Category `json:"category"`
	LastDate string   `json:"last_date"`
	AddedOn  string   `json:"added_on"`
	IsNew    bool     `json:"is_new"`
}

// AddedDay parses AddedOn, falling back to SentinelDate.
func (j Job) AddedDay() time.Time {
	d, err := time.Parse(DateLayout, j.AddedOn)
	if err != nil {
		d, _ = time.Parse(DateLayout, SentinelDate)
	}
	return d
}

// IsNewOn reports whether the job was first seen on the given civil date.
func (j Job) IsNewOn(today string) bool {
	return j.AddedOn != "" && j.AddedOn == today
}

// Day formats t as a civil date in its own location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}
