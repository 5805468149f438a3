// Package trackingrepo persists delivery tracking records with GORM.
package trackingrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingDTO represents the database structure for persisting delivery
// tracking records. Stops are flattened into coordinate and address columns;
// the order reference is indexed but deliberately not unique.
type TrackingDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;index"`
	DriverID              uuid.UUID `gorm:"type:uuid;index"`
	PickupLat             float64
	PickupLng             float64
	PickupAddress         string
	DropoffLat            float64
	DropoffLng            float64
	DropoffAddress        string
	Status                string
	CurrentLat            *float64
	CurrentLng            *float64
	LocationRecordedAt    *time.Time
	EstimatedPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time
	ActualPickupTime      *time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
}

// TableName overrides GORM's default naming convention to use "delivery_trackings".
func (TrackingDTO) TableName() string {
	return "delivery_trackings"
}

func fromDomain(record *tracking.DeliveryTracking) TrackingDTO {
	dto := TrackingDTO{
		ID:                    record.ID().Bytes(),
		OrderID:               record.OrderID().Bytes(),
		DriverID:              record.DriverID().Bytes(),
		PickupLat:             record.Pickup().Point.Latitude(),
		PickupLng:             record.Pickup().Point.Longitude(),
		PickupAddress:         record.Pickup().Address,
		DropoffLat:            record.Dropoff().Point.Latitude(),
		DropoffLng:            record.Dropoff().Point.Longitude(),
		DropoffAddress:        record.Dropoff().Address,
		Status:                record.Status().String(),
		EstimatedPickupTime:   record.EstimatedPickupTime(),
		EstimatedDeliveryTime: record.EstimatedDeliveryTime(),
		ActualPickupTime:      record.ActualPickupTime(),
		ActualDeliveryTime:    record.ActualDeliveryTime(),
	}

	if current := record.CurrentLocation(); current != nil {
		lat := current.Point.Latitude()
		lng := current.Point.Longitude()
		recordedAt := current.RecordedAt
		dto.CurrentLat = &lat
		dto.CurrentLng = &lng
		dto.LocationRecordedAt = &recordedAt
	}

	return dto
}

func toDomain(dto TrackingDTO) (*tracking.DeliveryTracking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	dropoffPoint, err := kernel.NewGeoPoint(dto.DropoffLat, dto.DropoffLng)
	if err != nil {
		return nil, err
	}

	var current *tracking.Snapshot
	if dto.CurrentLat != nil && dto.CurrentLng != nil && dto.LocationRecordedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.CurrentLat, *dto.CurrentLng)
		if pointErr != nil {
			return nil, pointErr
		}
		current = &tracking.Snapshot{
			Point:      point,
			RecordedAt: *dto.LocationRecordedAt,
		}
	}

	return tracking.RestoreDeliveryTracking(
		id,
		orderID,
		driverID,
		tracking.Stop{Point: pickupPoint, Address: dto.PickupAddress},
		tracking.Stop{Point: dropoffPoint, Address: dto.DropoffAddress},
		tracking.Status(dto.Status),
		current,
		dto.EstimatedPickupTime,
		dto.EstimatedDeliveryTime,
		dto.ActualPickupTime,
		dto.ActualDeliveryTime,
	)
}
