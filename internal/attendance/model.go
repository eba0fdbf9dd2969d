package attendance

import "time"

// IST is the fixed reporting timezone. Every log timestamp is stored,
// bucketed into calendar days, and rendered in IST regardless of the host
// clock. A fixed zone avoids a runtime dependency on tzdata.
var IST = time.FixedZone("IST", 5*3600+30*60)

// User is a registered attendee. Users are immutable once created.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RollNo     string    `json:"rollNo"`
	MacAddress string    `json:"macaddress,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Log is a single timestamped check-in/out event tied to one user.
type Log struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// LogDetail is a log joined with its user's name, for listings.
type LogDetail struct {
	LogID     string    `json:"log_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
}

// AttendanceRecord is one user's attendance on one date. Login and Logout
// are nil when the user had no log that day.
type AttendanceRecord struct {
	UserName string
	RollNo   string
	Login    *time.Time
	Logout   *time.Time
}

// DaySheet holds the records of every known user for one calendar date.
type DaySheet struct {
	Date    time.Time
	Records []AttendanceRecord
}
