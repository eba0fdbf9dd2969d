package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReportTimes(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "morning with leading zero", in: ist(2024, time.January, 1, 9, 5, 0), want: "09:05:00 AM"},
		{name: "afternoon", in: ist(2024, time.January, 1, 17, 0, 0), want: "05:00:00 PM"},
		{name: "just after midnight", in: ist(2024, time.January, 1, 0, 30, 0), want: "12:30:00 AM"},
		{name: "noon", in: ist(2024, time.January, 1, 12, 0, 0), want: "12:00:00 PM"},
		{name: "with seconds", in: ist(2024, time.January, 1, 23, 59, 59), want: "11:59:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := tt.in
			sheets := []DaySheet{{
				Date:    ist(2024, time.January, 1, 0, 0, 0),
				Records: []AttendanceRecord{{UserName: "Alice", RollNo: "A1", Login: &ts, Logout: &ts}},
			}}
			out := FormatReport(sheets)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Records[0].LoginTime)
			assert.Equal(t, tt.want, out[0].Records[0].LogoutTime)
		})
	}
}

func TestFormatReportDateAndAbsent(t *testing.T) {
	login := ist(2024, time.February, 9, 9, 0, 0)
	logout := ist(2024, time.February, 9, 18, 15, 30)
	sheets := []DaySheet{{
		Date: ist(2024, time.February, 9, 0, 0, 0),
		Records: []AttendanceRecord{
			{UserName: "Alice", RollNo: "A1", Login: &login, Logout: &logout},
			{UserName: "Bob", RollNo: "B1"},
		},
	}}

	out := FormatReport(sheets)
	require.Len(t, out, 1)
	assert.Equal(t, "09/02/2024", out[0].Date)

	assert.Equal(t, RecordView{
		Name: "Alice", RollNo: "A1",
		LoginTime: "09:00:00 AM", LogoutTime: "06:15:30 PM",
	}, out[0].Records[0])
	assert.Equal(t, RecordView{
		Name: "Bob", RollNo: "B1",
		LoginTime: Absent, LogoutTime: Absent,
	}, out[0].Records[1])
}

// End-to-end over the pure core: two users, logs for one of them.
func TestAggregateAndFormatScenario(t *testing.T) {
	users := []User{
		{ID: "1", Name: "Alice", RollNo: "A1"},
		{ID: "2", Name: "Bob", RollNo: "B1"},
	}
	logs := []Log{
		{ID: "l1", UserID: "1", Timestamp: ist(2024, time.January, 1, 9, 0, 0)},
		{ID: "l2", UserID: "1", Timestamp: ist(2024, time.January, 1, 17, 0, 0)},
	}

	got := FormatReport(Aggregate(users, logs))

	want := []ReportDay{{
		Date: "01/01/2024",
		Records: []RecordView{
			{Name: "Alice", RollNo: "A1", LoginTime: "09:00:00 AM", LogoutTime: "05:00:00 PM"},
			{Name: "Bob", RollNo: "B1", LoginTime: "Absent", LogoutTime: "Absent"},
		},
	}}
	assert.Equal(t, want, got)
}

func TestFormatReportEmpty(t *testing.T) {
	assert.Empty(t, FormatReport(nil))
}
