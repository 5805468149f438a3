package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error envelope for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomValidator adapts go-playground/validator to echo's Validator
// interface.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates the request validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type CreateOrderRequest struct {
	Category   string     `json:"category" validate:"required"`
	Address    string     `json:"address" validate:"required"`
	Items      []string   `json:"items" validate:"required,min=1,dive,required"`
	TotalCents int64      `json:"total_cents" validate:"required,gt=0"`
	PickupTime *time.Time `json:"pickup_time,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Address     string     `json:"address"`
	Items       []string   `json:"items"`
	TotalCents  int64      `json:"total_cents"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PickupTime  *time.Time `json:"pickup_time,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateDriverRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email,omitempty"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

type DriverResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	VehicleType     string     `json:"vehicle_type"`
	VehicleNumber   string     `json:"vehicle_number"`
	Rating          float64    `json:"rating"`
	TotalDeliveries int        `json:"total_deliveries"`
	Status          string     `json:"status"`
	LastLatitude    *float64   `json:"last_lat,omitempty"`
	LastLongitude   *float64   `json:"last_lng,omitempty"`
	LastReportedAt  *time.Time `json:"last_reported_at,omitempty"`
}

type UpdateDriverStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateDriverLocationRequest struct {
	Latitude  float64 `json:"lat" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"lng" validate:"required,min=-180,max=180"`
	OrderID   string  `json:"order_id,omitempty"`
}

type UpdateTrackingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type TrackingResponse struct {
	TrackingID            string     `json:"tracking_id"`
	OrderID               string     `json:"order_id"`
	Status                string     `json:"status"`
	PickupAddress         string     `json:"pickup_address"`
	DropoffAddress        string     `json:"dropoff_address"`
	DriverName            string     `json:"driver_name"`
	DriverPhone           string     `json:"driver_phone"`
	DriverVehicleType     string     `json:"driver_vehicle_type"`
	DriverVehicleNumber   string     `json:"driver_vehicle_number"`
	DriverRating          float64    `json:"driver_rating"`
	CurrentLatitude       *float64   `json:"current_lat,omitempty"`
	CurrentLongitude      *float64   `json:"current_lng,omitempty"`
	LocationRecordedAt    *time.Time `json:"location_recorded_at,omitempty"`
	EstimatedPickupTime   *time.Time `json:"estimated_pickup_time,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	ActualPickupTime      *time.Time `json:"actual_pickup_time,omitempty"`
	ActualDeliveryTime    *time.Time `json:"actual_delivery_time,omitempty"`
}

type FlowStepResponse struct {
	Status        string   `json:"status"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
	Actions       []string `json:"actions,omitempty"`
	Completed     bool     `json:"completed"`
	Current       bool     `json:"current"`
}

type OrderFlowResponse struct {
	OrderID string             `json:"order_id"`
	Status  string             `json:"status"`
	Steps   []FlowStepResponse `json:"steps"`
}

type SupportContactResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	PhoneURL    string `json:"tel_url"`
	Email       string `json:"email,omitempty"`
}
