package http

import (
	"time"

	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/notifications"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateParcelRequest is the shipment request body.
type CreateParcelRequest struct {
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address"`
	PickupAddress    string  `json:"pickup_address"`
	PackageType      string  `json:"package_type"`
	WeightKg         float64 `json:"weight_kg"`
	DeclaredValue    float64 `json:"declared_value"`
	PaymentMethod    string  `json:"payment_method,omitempty"`
}

// TransitionRequest is the status transition body.
type TransitionRequest struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// AssignDriverRequest is the driver assignment body.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// ParcelResponse is the full parcel view returned to authorized actors.
type ParcelResponse struct {
	ID               string     `json:"id"`
	TrackingCode     string     `json:"tracking_code"`
	SenderID         string     `json:"sender_id"`
	DriverID         *string    `json:"driver_id,omitempty"`
	CompanyID        *string    `json:"company_id,omitempty"`
	RecipientName    string     `json:"recipient_name"`
	RecipientPhone   string     `json:"recipient_phone"`
	RecipientAddress string     `json:"recipient_address"`
	PickupAddress    string     `json:"pickup_address"`
	PackageType      string     `json:"package_type"`
	WeightKg         float64    `json:"weight_kg"`
	DeclaredValue    float64    `json:"declared_value"`
	DeliveryFee      float64    `json:"delivery_fee"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	PickedUpAt       *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
}

// ParcelSummaryResponse is one row of the scoped parcel listing.
type ParcelSummaryResponse struct {
	ID               string    `json:"id"`
	TrackingCode     string    `json:"tracking_code"`
	Status           string    `json:"status"`
	PackageType      string    `json:"package_type"`
	RecipientName    string    `json:"recipient_name"`
	RecipientAddress string    `json:"recipient_address"`
	PickupAddress    string    `json:"pickup_address"`
	WeightKg         float64   `json:"weight_kg"`
	DeliveryFee      float64   `json:"delivery_fee"`
	CreatedAt        time.Time `json:"created_at"`
}

// TrackingEventResponse is one ledger entry.
type TrackingEventResponse struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TrackResponse is the public tracking view keyed by tracking code.
type TrackResponse struct {
	TrackingCode string                  `json:"tracking_code"`
	Status       string                  `json:"status"`
	PackageType  string                  `json:"package_type"`
	CreatedAt    time.Time               `json:"created_at"`
	DeliveredAt  *time.Time              `json:"delivered_at,omitempty"`
	Events       []TrackingEventResponse `json:"events"`
}

// RouteStopResponse is one stop of a driver's sequenced route.
type RouteStopResponse struct {
	Stop             int       `json:"stop"`
	ParcelID         string    `json:"parcel_id"`
	TrackingCode     string    `json:"tracking_code"`
	Status           string    `json:"status"`
	PackageType      string    `json:"package_type"`
	Express          bool      `json:"express"`
	PickupAddress    string    `json:"pickup_address"`
	RecipientName    string    `json:"recipient_name"`
	RecipientAddress string    `json:"recipient_address"`
	CreatedAt        time.Time `json:"created_at"`
}

// DashboardStatsResponse holds the scoped per-status parcel counts.
type DashboardStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	PickedUp  int64 `json:"picked_up"`
	InTransit int64 `json:"in_transit"`
	Delivered int64 `json:"delivered"`
	Cancelled int64 `json:"cancelled"`
}

// NotificationResponse is one inbox entry.
type NotificationResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	ParcelID     string    `json:"parcel_id"`
	TrackingCode string    `json:"tracking_code"`
	CreatedAt    time.Time `json:"created_at"`
	Read         bool      `json:"read"`
}

func toParcelResponse(p *parcel.Parcel) ParcelResponse {
	resp := ParcelResponse{
		ID:               p.ID().String(),
		TrackingCode:     p.TrackingCode().Value(),
		SenderID:         p.SenderID().String(),
		RecipientName:    p.Recipient().Name(),
		RecipientPhone:   p.Recipient().Phone(),
		RecipientAddress: p.Recipient().Address(),
		PickupAddress:    p.PickupAddress(),
		PackageType:      p.PackageType().String(),
		WeightKg:         p.WeightKg(),
		DeclaredValue:    p.DeclaredValue(),
		DeliveryFee:      p.DeliveryFee(),
		Status:           p.Status().String(),
		PaymentStatus:    p.PaymentStatus().String(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
		PickedUpAt:       p.PickedUpAt(),
		DeliveredAt:      p.DeliveredAt(),
	}
	if id := p.DriverID(); id != nil {
		s := id.String()
		resp.DriverID = &s
	}
	if id := p.CompanyID(); id != nil {
		s := id.String()
		resp.CompanyID = &s
	}
	return resp
}

func toTrackingEventResponses(events []queries.GetParcelHistoryQueryResponse) []TrackingEventResponse {
	out := make([]TrackingEventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, TrackingEventResponse{
			Status:    event.Status.String(),
			Location:  event.Location,
			Notes:     event.Notes,
			CreatedAt: event.CreatedAt,
		})
	}
	return out
}

func toNotificationResponse(n *notifications.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           n.ID.String(),
		Kind:         string(n.Kind),
		Title:        n.Title,
		Message:      n.Message,
		ParcelID:     n.ParcelID.String(),
		TrackingCode: n.TrackingCode,
		CreatedAt:    n.CreatedAt,
		Read:         n.Read,
	}
}
