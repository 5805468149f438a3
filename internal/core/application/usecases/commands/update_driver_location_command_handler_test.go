package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDriverLocationCommandHandler_Handle_DriverOnly(t *testing.T) {
	ctx := t.Context()
	courier := availableDriver(t)
	point, err := kernel.NewGeoPoint(6.45, 3.4)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	driverRepo.On("Get", mock.Anything, courier.ID()).Return(courier, nil).Once()
	driverRepo.On("Update", mock.Anything, courier).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockTrackingPublisher)

	cmd, err := commands.NewUpdateDriverLocationCommand(courier.ID(), point, nil)
	require.NoError(t, err)

	h := commands.NewUpdateDriverLocationCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, courier.LastLocation())
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestUpdateDriverLocationCommandHandler_Handle_WithOrderFeedsTracking(t *testing.T) {
	ctx := t.Context()
	courier := availableDriver(t)
	record := storedTracking(t, courier.ID())
	point, err := kernel.NewGeoPoint(6.45, 3.4)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	driverRepo.On("Get", mock.Anything, courier.ID()).Return(courier, nil).Once()
	driverRepo.On("Update", mock.Anything, courier).Return(nil).Once()

	trackingRepo := new(MockTrackingRepository)
	trackingRepo.On("GetByOrder", mock.Anything, record.OrderID()).Return(record, nil).Once()
	trackingRepo.On("Update", mock.Anything, record).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockTrackingPublisher)
	publisher.On("Publish", mock.MatchedBy(func(event ports.TrackingEvent) bool {
		return event.Location != nil && event.OrderID.IsEqual(record.OrderID())
	})).Once()

	orderID := record.OrderID()
	cmd, err := commands.NewUpdateDriverLocationCommand(courier.ID(), point, &orderID)
	require.NoError(t, err)

	h := commands.NewUpdateDriverLocationCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, record.CurrentLocation())
	assert.Equal(t, tracking.StatusAssigned, record.Status())
	publisher.AssertExpectations(t)
}
