package attendance

const (
	dateLayout = "02/01/2006"
	timeLayout = "03:04:05 PM"
)

// Absent is the sentinel rendered for a user with no log on a date.
const Absent = "Absent"

// RecordView is one display-ready attendance row.
type RecordView struct {
	Name       string `json:"name"`
	RollNo     string `json:"rollNo"`
	LoginTime  string `json:"login_time"`
	LogoutTime string `json:"logout_time"`
}

// ReportDay holds the formatted rows for one date.
type ReportDay struct {
	Date    string       `json:"date"`
	Records []RecordView `json:"records"`
}

// FormatReport renders aggregated sheets for presentation: dates as
// DD/MM/YYYY, times on a 12-hour clock with seconds, absences as "Absent".
// Sheet and record order are preserved.
func FormatReport(sheets []DaySheet) []ReportDay {
	out := make([]ReportDay, 0, len(sheets))
	for _, sheet := range sheets {
		day := ReportDay{
			Date:    sheet.Date.Format(dateLayout),
			Records: make([]RecordView, 0, len(sheet.Records)),
		}
		for _, rec := range sheet.Records {
			view := RecordView{
				Name:       rec.UserName,
				RollNo:     rec.RollNo,
				LoginTime:  Absent,
				LogoutTime: Absent,
			}
			if rec.Login != nil {
				view.LoginTime = rec.Login.In(IST).Format(timeLayout)
			}
			if rec.Logout != nil {
				view.LogoutTime = rec.Logout.In(IST).Format(timeLayout)
			}
			day.Records = append(day.Records, view)
		}
		out = append(out, day)
	}
	return out
}
