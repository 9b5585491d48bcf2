package models

import "time"

// Commit is the tip commit of a branch.
type Commit struct {
	Hash    string
	Message string
	// Date is the committer's wall clock time. The UTC offset has already
	// been applied, so the value carries no zone of its own.
	Date time.Time
}

// DateFormat is how commit dates are shown next to a branch name.
const DateFormat = "2006-01-02 15:04:05"

// FormattedDate returns Date in DateFormat.
func (c Commit) FormattedDate() string {
	return c.Date.Format(DateFormat)
}
