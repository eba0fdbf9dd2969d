package attendance

import (
	"sort"
	"time"
)

type bounds struct {
	min time.Time
	max time.Time
}

// Aggregate reduces logs into one DaySheet per calendar date (IST) that has
// at least one log anywhere in the system, most recent date first. Every
// user appears on every sheet: a user with no log that day gets nil
// Login/Logout, otherwise Login is the earliest and Logout the latest
// timestamp of that user on that day. Record order follows the order of
// users. Logs whose user id matches no known user still contribute their
// date to the sheet set but no times.
//
// The function is total: it performs no I/O and never fails.
func Aggregate(users []User, logs []Log) []DaySheet {
	byDate := make(map[time.Time]map[string]bounds)
	for _, l := range logs {
		ts := l.Timestamp.In(IST)
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, IST)
		perUser, ok := byDate[day]
		if !ok {
			perUser = make(map[string]bounds)
			byDate[day] = perUser
		}
		b, ok := perUser[l.UserID]
		if !ok {
			perUser[l.UserID] = bounds{min: ts, max: ts}
			continue
		}
		if ts.Before(b.min) {
			b.min = ts
		}
		if ts.After(b.max) {
			b.max = ts
		}
		perUser[l.UserID] = b
	}

	dates := make([]time.Time, 0, len(byDate))
	for day := range byDate {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	sheets := make([]DaySheet, 0, len(dates))
	for _, day := range dates {
		records := make([]AttendanceRecord, 0, len(users))
		for _, u := range users {
			rec := AttendanceRecord{UserName: u.Name, RollNo: u.RollNo}
			if b, ok := byDate[day][u.ID]; ok {
				login, logout := b.min, b.max
				rec.Login = &login
				rec.Logout = &logout
			}
			records = append(records, rec)
		}
		sheets = append(sheets, DaySheet{Date: day, Records: records})
	}
	return sheets
}
