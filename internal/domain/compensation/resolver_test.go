package compensation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func snapshotWithBase(base int64) Snapshot {
	return Snapshot{BaseSalary: decimal.NewFromInt(base)}
}

func eventOn(date string, newBase, priorBase int64) Event {
	d, _ := time.Parse("2006-01-02", date)
	return Event{
		ID:             date,
		EffectiveDate:  d,
		NewStructure:   snapshotWithBase(newBase),
		PriorStructure: snapshotWithBase(priorBase),
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return d
}

func TestResolveAt(t *testing.T) {
	baseline := Baseline{EmployeeID: "emp-1", Snapshot: snapshotWithBase(300000)}
	events := []Event{
		eventOn("2024-07-01", 400000, 300000),
		eventOn("2023-01-01", 350000, 300000),
	}

	t.Run("no events falls back to baseline", func(t *testing.T) {
		got := ResolveAt(baseline, nil, mustDate(t, "2024-06-15"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(300000)))
	})

	t.Run("latest event on or before the date wins", func(t *testing.T) {
		got := ResolveAt(baseline, events, mustDate(t, "2024-08-01"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(400000)))

		got = ResolveAt(baseline, events, mustDate(t, "2024-06-30"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(350000)))
	})

	t.Run("effective date itself counts", func(t *testing.T) {
		got := ResolveAt(baseline, events, mustDate(t, "2024-07-01"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(400000)))
	})

	t.Run("only future events resolve to the earliest prior structure", func(t *testing.T) {
		got := ResolveAt(baseline, events, mustDate(t, "2022-05-01"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(300000)))
	})

	t.Run("order of the input slice does not matter", func(t *testing.T) {
		reversed := []Event{events[1], events[0]}
		a := ResolveAt(baseline, events, mustDate(t, "2024-08-01"))
		b := ResolveAt(baseline, reversed, mustDate(t, "2024-08-01"))
		assert.True(t, a.BaseSalary.Equal(b.BaseSalary))
	})
}

func TestResolveBefore(t *testing.T) {
	baseline := Baseline{EmployeeID: "emp-1", Snapshot: snapshotWithBase(300000)}
	events := []Event{
		eventOn("2023-01-01", 350000, 300000),
		eventOn("2024-07-01", 400000, 350000),
	}

	t.Run("event on the date itself is excluded", func(t *testing.T) {
		got := ResolveBefore(baseline, events, mustDate(t, "2024-07-01"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(350000)))
	})

	t.Run("nothing before the date falls back to baseline", func(t *testing.T) {
		got := ResolveBefore(baseline, events, mustDate(t, "2022-01-01"))
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(300000)))
	})
}

func TestLatest(t *testing.T) {
	assert.Nil(t, Latest(nil))

	events := []Event{
		eventOn("2023-01-01", 350000, 300000),
		eventOn("2024-07-01", 400000, 350000),
	}
	latest := Latest(events)
	assert.NotNil(t, latest)
	assert.True(t, latest.NewStructure.BaseSalary.Equal(decimal.NewFromInt(400000)))
}
