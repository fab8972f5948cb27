package compensation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ametis-rh/paie-backend-go/internal/domain/compensation"
	"github.com/ametis-rh/paie-backend-go/internal/domain/employee"
	"github.com/ametis-rh/paie-backend-go/internal/pkg/validator"
)

type CompensationServiceImpl struct {
	txManager        compensation.TxManager
	compensationRepo compensation.CompensationRepository
	employeeRepo     employee.EmployeeRepository
	now              func() time.Time
}

func NewCompensationService(
	txManager compensation.TxManager,
	compensationRepo compensation.CompensationRepository,
	employeeRepo employee.EmployeeRepository,
) compensation.CompensationService {
	return &CompensationServiceImpl{
		txManager:        txManager,
		compensationRepo: compensationRepo,
		employeeRepo:     employeeRepo,
		now:              time.Now,
	}
}

// RecordEvent appends a compensation change to the employee's ledger. The
// structure in force immediately before the effective date is captured as
// the event's prior structure, the partial values are merged over it into
// the new structure, and the baseline absorbs the new values — ledger write
// and baseline rewrite commit together or not at all.
func (s *CompensationServiceImpl) RecordEvent(ctx context.Context, req compensation.RecordEventRequest) (compensation.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.EventResponse{}, err
	}

	effectiveDate, ok := validator.IsValidDate(req.EffectiveDate)
	if !ok {
		return compensation.EventResponse{}, fmt.Errorf("%w: %q", compensation.ErrInvalidDate, req.EffectiveDate)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return compensation.EventResponse{}, err
	}

	exists, err := s.compensationRepo.HasEventOnDate(ctx, emp.ID, effectiveDate)
	if err != nil {
		return compensation.EventResponse{}, err
	}
	if exists {
		return compensation.EventResponse{}, compensation.ErrDuplicateEffectiveDate
	}

	baseline, err := s.getOrEmptyBaseline(ctx, emp.ID)
	if err != nil {
		return compensation.EventResponse{}, err
	}

	events, err := s.compensationRepo.ListEvents(ctx, emp.ID)
	if err != nil {
		return compensation.EventResponse{}, err
	}

	patch := req.Values.ToPatch()
	prior := compensation.ResolveBefore(baseline, events, effectiveDate)

	event := compensation.Event{
		EmployeeID:     emp.ID,
		Type:           compensation.EventType(req.EventType),
		EffectiveDate:  effectiveDate,
		NewStructure:   patch.ApplyTo(prior),
		PriorStructure: prior,
	}

	var created compensation.Event
	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		created, err = s.compensationRepo.CreateEvent(txCtx, event)
		if err != nil {
			return err
		}

		// Future-dated events do not move the current baseline; the resolver
		// picks them up once their date arrives.
		if effectiveDate.After(s.now()) {
			return nil
		}

		baseline.Snapshot = patch.ApplyTo(baseline.Snapshot)
		_, err = s.compensationRepo.PutBaseline(txCtx, baseline)
		return err
	})
	if err != nil {
		return compensation.EventResponse{}, err
	}

	return compensation.ToEventResponse(created), nil
}

// UpdateEvent corrects an event's new structure in place. The prior
// structure is deliberately left as captured at creation time; changed
// salary fields are re-applied to the baseline.
func (s *CompensationServiceImpl) UpdateEvent(ctx context.Context, req compensation.UpdateEventRequest) (compensation.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.EventResponse{}, err
	}

	event, err := s.compensationRepo.GetEvent(ctx, req.ID)
	if err != nil {
		return compensation.EventResponse{}, err
	}

	patch := req.Values.ToPatch()
	event.NewStructure = patch.ApplyTo(event.NewStructure)

	baseline, err := s.getOrEmptyBaseline(ctx, event.EmployeeID)
	if err != nil {
		return compensation.EventResponse{}, err
	}

	err = s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.compensationRepo.UpdateEventStructure(txCtx, event.ID, event.NewStructure); err != nil {
			return err
		}

		if patch.IsEmpty() {
			return nil
		}
		baseline.Snapshot = patch.ApplyTo(baseline.Snapshot)
		_, err := s.compensationRepo.PutBaseline(txCtx, baseline)
		return err
	})
	if err != nil {
		return compensation.EventResponse{}, err
	}

	return compensation.ToEventResponse(event), nil
}

// DeleteEvent removes an event and reverts the baseline: to the new
// structure of the now-latest remaining event, or — when the deleted event
// was the last one — to the prior structure it captured at creation.
func (s *CompensationServiceImpl) DeleteEvent(ctx context.Context, employeeID, eventID string) error {
	event, err := s.compensationRepo.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.EmployeeID != employeeID {
		return compensation.ErrEventNotFound
	}

	baseline, err := s.getOrEmptyBaseline(ctx, employeeID)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.compensationRepo.DeleteEvent(txCtx, eventID); err != nil {
			return err
		}

		remaining, err := s.compensationRepo.ListEvents(txCtx, employeeID)
		if err != nil {
			return err
		}

		if latest := compensation.Latest(remaining); latest != nil {
			baseline.Snapshot = latest.NewStructure
		} else {
			baseline.Snapshot = event.PriorStructure
		}

		_, err = s.compensationRepo.PutBaseline(txCtx, baseline)
		return err
	})
}

func (s *CompensationServiceImpl) ListEvents(ctx context.Context, employeeID string) ([]compensation.EventResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	events, err := s.compensationRepo.ListEvents(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]compensation.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, compensation.ToEventResponse(e))
	}
	return result, nil
}

func (s *CompensationServiceImpl) GetBaseline(ctx context.Context, employeeID string) (compensation.BaselineResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return compensation.BaselineResponse{}, err
	}

	baseline, err := s.compensationRepo.GetBaseline(ctx, employeeID)
	if err != nil {
		return compensation.BaselineResponse{}, err
	}

	return compensation.ToBaselineResponse(baseline), nil
}

func (s *CompensationServiceImpl) getOrEmptyBaseline(ctx context.Context, employeeID string) (compensation.Baseline, error) {
	baseline, err := s.compensationRepo.GetBaseline(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, compensation.ErrBaselineNotFound) {
			return compensation.Baseline{}, err
		}
		baseline = compensation.Baseline{EmployeeID: employeeID}
	}
	return baseline, nil
}
