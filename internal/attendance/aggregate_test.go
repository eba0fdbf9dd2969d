package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ist(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, IST)
}

func TestAggregateMinMax(t *testing.T) {
	users := []User{{ID: "u1", Name: "Alice", RollNo: "A1"}}
	logs := []Log{
		{ID: "l1", UserID: "u1", Timestamp: ist(2024, time.January, 1, 9, 5, 0)},
		{ID: "l2", UserID: "u1", Timestamp: ist(2024, time.January, 1, 17, 30, 0)},
		{ID: "l3", UserID: "u1", Timestamp: ist(2024, time.January, 1, 9, 0, 0)},
	}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 1)
	require.Len(t, sheets[0].Records, 1)

	rec := sheets[0].Records[0]
	require.NotNil(t, rec.Login)
	require.NotNil(t, rec.Logout)
	assert.True(t, rec.Login.Equal(ist(2024, time.January, 1, 9, 0, 0)))
	assert.True(t, rec.Logout.Equal(ist(2024, time.January, 1, 17, 30, 0)))
}

func TestAggregateAbsentUser(t *testing.T) {
	users := []User{
		{ID: "u1", Name: "Alice", RollNo: "A1"},
		{ID: "u2", Name: "Bob", RollNo: "B1"},
	}
	logs := []Log{
		{ID: "l1", UserID: "u1", Timestamp: ist(2024, time.January, 1, 9, 0, 0)},
		{ID: "l2", UserID: "u1", Timestamp: ist(2024, time.January, 1, 17, 0, 0)},
	}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 1)
	require.Len(t, sheets[0].Records, 2)

	alice := sheets[0].Records[0]
	assert.Equal(t, "Alice", alice.UserName)
	require.NotNil(t, alice.Login)
	assert.True(t, alice.Login.Equal(ist(2024, time.January, 1, 9, 0, 0)))
	assert.True(t, alice.Logout.Equal(ist(2024, time.January, 1, 17, 0, 0)))

	bob := sheets[0].Records[1]
	assert.Equal(t, "Bob", bob.UserName)
	assert.Nil(t, bob.Login)
	assert.Nil(t, bob.Logout)
}

func TestAggregateSingleLog(t *testing.T) {
	users := []User{{ID: "u1", Name: "Alice", RollNo: "A1"}}
	logs := []Log{{ID: "l1", UserID: "u1", Timestamp: ist(2024, time.March, 5, 8, 45, 12)}}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 1)

	rec := sheets[0].Records[0]
	require.NotNil(t, rec.Login)
	require.NotNil(t, rec.Logout)
	assert.True(t, rec.Login.Equal(*rec.Logout))
}

func TestAggregateDatesDescending(t *testing.T) {
	users := []User{{ID: "u1", Name: "Alice", RollNo: "A1"}}
	logs := []Log{
		{ID: "l1", UserID: "u1", Timestamp: ist(2024, time.January, 2, 9, 0, 0)},
		{ID: "l2", UserID: "u1", Timestamp: ist(2024, time.January, 5, 9, 0, 0)},
		{ID: "l3", UserID: "u1", Timestamp: ist(2024, time.January, 1, 9, 0, 0)},
	}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 3)
	assert.Equal(t, 5, sheets[0].Date.Day())
	assert.Equal(t, 2, sheets[1].Date.Day())
	assert.Equal(t, 1, sheets[2].Date.Day())
}

func TestAggregateCoveragePerDate(t *testing.T) {
	users := []User{
		{ID: "u1", Name: "Alice", RollNo: "A1"},
		{ID: "u2", Name: "Bob", RollNo: "B1"},
		{ID: "u3", Name: "Carol", RollNo: "C1"},
	}
	logs := []Log{
		{ID: "l1", UserID: "u1", Timestamp: ist(2024, time.January, 1, 9, 0, 0)},
		{ID: "l2", UserID: "u2", Timestamp: ist(2024, time.January, 2, 9, 0, 0)},
	}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 2)
	for _, sheet := range sheets {
		require.Len(t, sheet.Records, len(users))
		assert.Equal(t, "Alice", sheet.Records[0].UserName)
		assert.Equal(t, "Bob", sheet.Records[1].UserName)
		assert.Equal(t, "Carol", sheet.Records[2].UserName)
	}
}

func TestAggregateOrphanLogContributesDateOnly(t *testing.T) {
	users := []User{{ID: "u1", Name: "Alice", RollNo: "A1"}}
	logs := []Log{{ID: "l1", UserID: "ghost", Timestamp: ist(2024, time.January, 1, 9, 0, 0)}}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 1)
	require.Len(t, sheets[0].Records, 1)
	assert.Nil(t, sheets[0].Records[0].Login)
	assert.Nil(t, sheets[0].Records[0].Logout)
}

func TestAggregateBucketsInIST(t *testing.T) {
	// 20:00 UTC on Jan 1 is 01:30 IST on Jan 2.
	users := []User{{ID: "u1", Name: "Alice", RollNo: "A1"}}
	logs := []Log{{ID: "l1", UserID: "u1", Timestamp: time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)}}

	sheets := Aggregate(users, logs)
	require.Len(t, sheets, 1)
	assert.Equal(t, 2, sheets[0].Date.Day())

	rec := sheets[0].Records[0]
	require.NotNil(t, rec.Login)
	assert.Equal(t, 1, rec.Login.Hour())
	assert.Equal(t, 30, rec.Login.Minute())
}

func TestAggregateDeterministic(t *testing.T) {
	users := []User{
		{ID: "u1", Name: "Alice", RollNo: "A1"},
		{ID: "u2", Name: "Bob", RollNo: "B1"},
	}
	logs := []Log{
		{ID: "l1", UserID: "u1", Timestamp: ist(2024, time.January, 1, 9, 0, 0)},
		{ID: "l2", UserID: "u2", Timestamp: ist(2024, time.January, 2, 10, 0, 0)},
		{ID: "l3", UserID: "u1", Timestamp: ist(2024, time.January, 2, 11, 0, 0)},
	}

	first := Aggregate(users, logs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Aggregate(users, logs))
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, nil))
	assert.Empty(t, Aggregate([]User{{ID: "u1", Name: "Alice", RollNo: "A1"}}, nil))
}
