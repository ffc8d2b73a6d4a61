package commands

import (
	"context"
	"fmt"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"
	"logitrack/internal/core/ports"
)

// trackingCodeAttempts bounds the collision-regeneration loop. The timestamp
// component makes even a second attempt rare.
const trackingCodeAttempts = 10

// CreateParcelCommandHandler handles the parcel creation workflow: fee
// computation, synchronous payment authorization, tracking code generation,
// and the transactional insert of the parcel with its implicit pending event.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	payments   ports.PaymentService
	feeCalc    services.FeeCalculator
	publisher  ports.ChangePublisher
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	payments ports.PaymentService,
	publisher ports.ChangePublisher,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		feeCalc:    services.NewFeeCalculator(),
		publisher:  publisher,
	}
}

// Handle processes the creation command. Payment is authorized before anything
// is persisted; a declined payment leaves no parcel and no ledger entry.
// The published change event is emitted only after the transaction commits.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	fee := h.feeCalc.ComputeFee(cmd.WeightKg(), cmd.PackageType())

	paymentID, err := h.payments.Authorize(ctx, fee, cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels := uow.ParcelRepository()
	ledger := uow.TrackingLedger()
	now := time.Now().UTC()

	code, err := h.generateUniqueCode(ctx, parcels, now)
	if err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		code,
		cmd.SenderID(),
		cmd.Recipient(),
		cmd.PickupAddress(),
		cmd.PackageType(),
		cmd.WeightKg(),
		cmd.DeclaredValue(),
		fee,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = p.MarkPaid(paymentID, now); err != nil {
		return nil, err
	}

	if err = parcels.Add(ctx, p); err != nil {
		return nil, err
	}

	event, err := p.CreationEvent()
	if err != nil {
		return nil, err
	}
	if err = ledger.Append(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ports.ParcelChange{
		Kind:         ports.ChangeStatusUpdated,
		ParcelID:     p.ID(),
		TrackingCode: p.TrackingCode().Value(),
		Status:       p.Status(),
		SenderID:     p.SenderID(),
		OccurredAt:   now,
	})

	return p, nil
}

// generateUniqueCode regenerates on collision instead of failing creation.
func (h CreateParcelCommandHandler) generateUniqueCode(
	ctx context.Context, parcels ports.ParcelRepository, now time.Time,
) (parcel.TrackingCode, error) {
	for i := 0; i < trackingCodeAttempts; i++ {
		code := parcel.GenerateTrackingCode(now)
		exists, err := parcels.TrackingCodeExists(ctx, code)
		if err != nil {
			return parcel.TrackingCode{}, err
		}
		if !exists {
			return code, nil
		}
	}
	return parcel.TrackingCode{}, fmt.Errorf(
		"could not generate a unique tracking code after %d attempts", trackingCodeAttempts)
}
