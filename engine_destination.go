package goTravel

import (
	"context"
	"errors"

	"github.com/MrEthical07/goTravel/destination"
)

// CreateDestination describes the createdestination operation and its observable behavior.
//
// CreateDestination may return an error when input validation, dependency calls, or security checks fail.
// CreateDestination does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) CreateDestination(ctx context.Context, token string, input DestinationInput) (*Destination, error) {
	caller, err := e.RequireRole(ctx, token, RoleAdmin)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Description == "" || input.Location == "" {
		e.emitAudit(ctx, auditEventDestinationCreated, false, caller.Email, ErrInvalidInput, func() map[string]string {
			return map[string]string{
				"reason": "missing_fields",
			}
		})
		return nil, ErrInvalidInput
	}

	created := e.destinations.Create(input.Name, input.Description, input.Location, caller.Email)

	e.metricInc(MetricDestinationCreated)
	e.emitAudit(ctx, auditEventDestinationCreated, true, caller.Email, nil, func() map[string]string {
		return map[string]string{
			"destination_id": created.ID,
		}
	})

	out := toDestination(created)
	return &out, nil
}

// Destinations describes the destinations operation and its observable behavior.
//
// Destinations may return an error when input validation, dependency calls, or security checks fail.
// Destinations does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Destinations(ctx context.Context, token string) ([]Destination, error) {
	if _, err := e.Validate(ctx, token); err != nil {
		return nil, err
	}

	records := e.destinations.All()
	out := make([]Destination, 0, len(records))
	for _, r := range records {
		out = append(out, toDestination(r))
	}

	return out, nil
}

// DestinationByID describes the destinationbyid operation and its observable behavior.
//
// DestinationByID may return an error when input validation, dependency calls, or security checks fail.
// DestinationByID does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DestinationByID(ctx context.Context, token, id string) (*Destination, error) {
	if _, err := e.Validate(ctx, token); err != nil {
		return nil, err
	}

	record, err := e.destinations.Get(id)
	if err != nil {
		if errors.Is(err, destination.ErrNotFound) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	out := toDestination(record)
	return &out, nil
}

// UpdateDestination describes the updatedestination operation and its observable behavior.
//
// UpdateDestination may return an error when input validation, dependency calls, or security checks fail.
// UpdateDestination does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateDestination(ctx context.Context, token, id string, patch DestinationPatch) (*Destination, error) {
	caller, err := e.RequireRole(ctx, token, RoleAdmin)
	if err != nil {
		return nil, err
	}

	if (patch.Name != nil && *patch.Name == "") ||
		(patch.Description != nil && *patch.Description == "") ||
		(patch.Location != nil && *patch.Location == "") {
		e.emitAudit(ctx, auditEventDestinationUpdated, false, caller.Email, ErrInvalidInput, func() map[string]string {
			return map[string]string{
				"destination_id": id,
				"reason":         "empty_field",
			}
		})
		return nil, ErrInvalidInput
	}

	updated, err := e.destinations.Update(id, destination.Patch{
		Name:        patch.Name,
		Description: patch.Description,
		Location:    patch.Location,
	})
	if err != nil {
		if errors.Is(err, destination.ErrNotFound) {
			e.emitAudit(ctx, auditEventDestinationUpdated, false, caller.Email, ErrDestinationNotFound, func() map[string]string {
				return map[string]string{
					"destination_id": id,
				}
			})
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}

	e.metricInc(MetricDestinationUpdated)
	e.emitAudit(ctx, auditEventDestinationUpdated, true, caller.Email, nil, func() map[string]string {
		return map[string]string{
			"destination_id": id,
		}
	})

	out := toDestination(updated)
	return &out, nil
}

// DeleteDestination describes the deletedestination operation and its observable behavior.
//
// DeleteDestination may return an error when input validation, dependency calls, or security checks fail.
// DeleteDestination does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) DeleteDestination(ctx context.Context, token, id string) error {
	caller, err := e.RequireRole(ctx, token, RoleAdmin)
	if err != nil {
		return err
	}

	if err := e.destinations.Delete(id); err != nil {
		if errors.Is(err, destination.ErrNotFound) {
			e.emitAudit(ctx, auditEventDestinationDeleted, false, caller.Email, ErrDestinationNotFound, func() map[string]string {
				return map[string]string{
					"destination_id": id,
				}
			})
			return ErrDestinationNotFound
		}
		return err
	}

	e.metricInc(MetricDestinationDeleted)
	e.emitAudit(ctx, auditEventDestinationDeleted, true, caller.Email, nil, func() map[string]string {
		return map[string]string{
			"destination_id": id,
		}
	})

	return nil
}

func toDestination(d destination.Destination) Destination {
	return Destination{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
		CreatedBy:   d.CreatedBy,
	}
}
