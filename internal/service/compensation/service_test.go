package compensation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== IN-MEMORY FAKES ==========

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

type fakeCompensationRepo struct {
	baselines map[string]compensation.Baseline
	events    map[string]compensation.Event
	nextID    int
}

func newFakeCompensationRepo() *fakeCompensationRepo {
	return &fakeCompensationRepo{
		baselines: make(map[string]compensation.Baseline),
		events:    make(map[string]compensation.Event),
	}
}

func (r *fakeCompensationRepo) GetBaseline(_ context.Context, employeeID string) (compensation.Baseline, error) {
	b, ok := r.baselines[employeeID]
	if !ok {
		return compensation.Baseline{}, compensation.ErrBaselineNotFound
	}
	return b, nil
}

func (r *fakeCompensationRepo) PutBaseline(_ context.Context, baseline compensation.Baseline) (compensation.Baseline, error) {
	baseline.UpdatedAt = time.Now()
	r.baselines[baseline.EmployeeID] = baseline
	return baseline, nil
}

func (r *fakeCompensationRepo) CreateEvent(_ context.Context, event compensation.Event) (compensation.Event, error) {
	r.nextID++
	event.ID = fmt.Sprintf("event-%d", r.nextID)
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	r.events[event.ID] = event
	return event, nil
}

func (r *fakeCompensationRepo) GetEvent(_ context.Context, eventID string) (compensation.Event, error) {
	e, ok := r.events[eventID]
	if !ok {
		return compensation.Event{}, compensation.ErrEventNotFound
	}
	return e, nil
}

func (r *fakeCompensationRepo) ListEvents(_ context.Context, employeeID string) ([]compensation.Event, error) {
	var out []compensation.Event
	for _, e := range r.events {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeCompensationRepo) UpdateEventStructure(_ context.Context, eventID string, structure compensation.Snapshot) error {
	e, ok := r.events[eventID]
	if !ok {
		return compensation.ErrEventNotFound
	}
	e.NewStructure = structure
	e.UpdatedAt = time.Now()
	r.events[eventID] = e
	return nil
}

func (r *fakeCompensationRepo) DeleteEvent(_ context.Context, eventID string) error {
	if _, ok := r.events[eventID]; !ok {
		return compensation.ErrEventNotFound
	}
	delete(r.events, eventID)
	return nil
}

func (r *fakeCompensationRepo) HasEventOnDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, e := range r.events {
		if e.EmployeeID == employeeID && e.EffectiveDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ========== SETUP ==========

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newTestService(t *testing.T) (compensation.CompensationService, *fakeCompensationRepo) {
	t.Helper()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:        "emp-1",
			Matricule: "M-0042",
			FullName:  "Kouassi Aya",
			HireDate:  time.Date(2014, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	compensationRepo := newFakeCompensationRepo()
	compensationRepo.baselines["emp-1"] = compensation.Baseline{
		EmployeeID: "emp-1",
		Snapshot: compensation.Snapshot{
			BaseSalary:   dec(300000),
			CNPSEnrolled: true,
		},
	}
	svc := NewCompensationService(fakeTxManager{}, compensationRepo, employeeRepo)
	return svc, compensationRepo
}

// ========== TESTS ==========

func TestRecordEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("captures prior structure and moves the baseline", func(t *testing.T) {
		svc, repo := newTestService(t)

		result, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "promotion",
			EffectiveDate: "2024-01-01",
			Values: compensation.SnapshotPatchRequest{
				BaseSalary: decPtr(400000),
				Housing:    decPtr(50000),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "400000", result.NewStructure.BaseSalary.String())
		assert.Equal(t, "300000", result.PriorStructure.BaseSalary.String())
		// Untouched fields carry over from the prior structure.
		assert.True(t, result.NewStructure.CNPSEnrolled)

		baseline := repo.baselines["emp-1"]
		assert.True(t, baseline.BaseSalary.Equal(dec(400000)))
		assert.True(t, baseline.Housing.Equal(dec(50000)))
	})

	t.Run("future-dated event leaves the baseline alone", func(t *testing.T) {
		svc, repo := newTestService(t)

		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		_, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "revaluation",
			EffectiveDate: future,
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(999000)},
		})
		require.NoError(t, err)

		baseline := repo.baselines["emp-1"]
		assert.True(t, baseline.BaseSalary.Equal(dec(300000)))
	})

	t.Run("rejects a second event on the same date", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "merit_increase",
			EffectiveDate: "2024-01-01",
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(350000)},
		}
		_, err := svc.RecordEvent(ctx, req)
		require.NoError(t, err)

		_, err = svc.RecordEvent(ctx, req)
		assert.ErrorIs(t, err, compensation.ErrDuplicateEffectiveDate)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "other",
			EffectiveDate: "01/02/2024",
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(350000)},
		})
		assert.ErrorIs(t, err, compensation.ErrInvalidDate)
	})

	t.Run("rejects unknown event types", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "raise",
			EffectiveDate: "2024-01-01",
		})
		assert.Error(t, err)
	})

	t.Run("rejects unknown employees", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-404",
			EventType:     "promotion",
			EffectiveDate: "2024-01-01",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	created, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
		EmployeeID:    "emp-1",
		EventType:     "promotion",
		EffectiveDate: "2024-01-01",
		Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(400000)},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(ctx, compensation.UpdateEventRequest{
		ID:     created.ID,
		Values: compensation.SnapshotPatchRequest{BaseSalary: decPtr(420000)},
	})
	require.NoError(t, err)

	assert.Equal(t, "420000", updated.NewStructure.BaseSalary.String())
	// The prior structure is a historical fact and never changes.
	assert.Equal(t, "300000", updated.PriorStructure.BaseSalary.String())

	baseline := repo.baselines["emp-1"]
	assert.True(t, baseline.BaseSalary.Equal(dec(420000)))
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting the only event restores its prior structure", func(t *testing.T) {
		svc, repo := newTestService(t)

		created, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "promotion",
			EffectiveDate: "2024-01-01",
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(400000)},
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteEvent(ctx, "emp-1", created.ID))

		baseline := repo.baselines["emp-1"]
		assert.True(t, baseline.BaseSalary.Equal(dec(300000)))
	})

	t.Run("deleting the latest event falls back to the previous one", func(t *testing.T) {
		svc, repo := newTestService(t)

		first, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "merit_increase",
			EffectiveDate: "2023-01-01",
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(350000)},
		})
		require.NoError(t, err)

		second, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "promotion",
			EffectiveDate: "2024-01-01",
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(400000)},
		})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteEvent(ctx, "emp-1", second.ID))

		baseline := repo.baselines["emp-1"]
		assert.True(t, baseline.BaseSalary.Equal(dec(350000)), "baseline = %s", baseline.BaseSalary)

		// The remaining event is untouched.
		remaining, err := svc.ListEvents(ctx, "emp-1")
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, first.ID, remaining[0].ID)
	})

	t.Run("record then delete is a no-op on the baseline", func(t *testing.T) {
		svc, repo := newTestService(t)
		before := repo.baselines["emp-1"].Snapshot

		created, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "revaluation",
			EffectiveDate: "2024-05-01",
			Values: compensation.SnapshotPatchRequest{
				BaseSalary:             decPtr(500000),
				SeniorityBonusOverride: decPtr(60000),
			},
		})
		require.NoError(t, err)
		require.NoError(t, svc.DeleteEvent(ctx, "emp-1", created.ID))

		after := repo.baselines["emp-1"].Snapshot
		assert.True(t, before.BaseSalary.Equal(after.BaseSalary))
		assert.Nil(t, after.SeniorityBonusOverride)
		assert.Equal(t, before.CNPSEnrolled, after.CNPSEnrolled)
	})

	t.Run("rejects an event belonging to another employee", func(t *testing.T) {
		svc, _ := newTestService(t)

		created, err := svc.RecordEvent(ctx, compensation.RecordEventRequest{
			EmployeeID:    "emp-1",
			EventType:     "promotion",
			EffectiveDate: "2024-01-01",
			Values:        compensation.SnapshotPatchRequest{BaseSalary: decPtr(400000)},
		})
		require.NoError(t, err)

		err = svc.DeleteEvent(ctx, "emp-2", created.ID)
		assert.ErrorIs(t, err, compensation.ErrEventNotFound)
	})
}

func TestGetBaseline(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	result, err := svc.GetBaseline(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, "300000", result.Structure.BaseSalary.String())

	_, err = svc.GetBaseline(ctx, "emp-404")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
