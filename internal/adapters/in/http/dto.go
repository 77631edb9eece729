package http

import "time"

// Request and response bodies of the HTTP API. The wire vocabulary uses the
// Portuguese operational terms the yard staff works with (VAZIO/CHEIO,
// ENTRADA/SAÍDA, PENDENTE/CONFIRMADO).

// ErrorResponse is the uniform error body of every failing endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewScheduleRequest is the body of POST /api/v1/schedules.
type NewScheduleRequest struct {
	ContainerNumber string `json:"containerNumber"`
	ContainerType   string `json:"containerType"`
	ShippingLine    string `json:"shippingLine"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	Time            string `json:"time"`
}

// NewScheduleResponse returns the identifier of a created appointment.
type NewScheduleResponse struct {
	ID string `json:"id"`
}

// GateMovementRequest is the body of POST /api/v1/gate/movements.
type GateMovementRequest struct {
	ContainerNumber string `json:"containerNumber"`
	Movement        string `json:"movement"`
	Plate           string `json:"plate"`
	DriverName      string `json:"driverName"`
	InspectorName   string `json:"inspectorName"`
	CargoStatus     string `json:"cargoStatus"`
}

// ChecklistRequest is the body of POST /api/v1/containers/:internalId/checklist.
type ChecklistRequest struct {
	InspectorName string `json:"inspectorName"`
}

// InspectionRequest is the body of POST /api/v1/containers/:internalId/inspection.
type InspectionRequest struct {
	InspectorName string `json:"inspectorName"`
}

// EIRRequest is the body of POST /api/v1/containers/:internalId/eir.
type EIRRequest struct {
	Condition     string `json:"condition"`
	SealNumber    string `json:"sealNumber"`
	InspectorName string `json:"inspectorName"`
}

// BillingRequest is the body of POST /api/v1/containers/:internalId/billing.
type BillingRequest struct {
	ClerkName string `json:"clerkName"`
}

// DirectoryEntry is one row of GET /api/v1/directory.
type DirectoryEntry struct {
	InternalID      int    `json:"internalId"`
	ContainerNumber string `json:"containerNumber"`
	Client          string `json:"client"`
	ShippingLine    string `json:"shippingLine"`
	Booking         string `json:"booking"`
	Terminal        string `json:"terminal"`
	CargoStatus     string `json:"cargoStatus"`
	State           string `json:"state"`
	Situation       string `json:"situation"`
	Billed          bool   `json:"billed"`
}

// GateLogEntry is one row of GET /api/v1/gate/log.
type GateLogEntry struct {
	ContainerNumber string    `json:"containerNumber"`
	Movement        string    `json:"movement"`
	Plate           string    `json:"plate"`
	DriverName      string    `json:"driverName"`
	InspectorName   string    `json:"inspectorName"`
	CargoStatus     string    `json:"cargoStatus"`
	At              time.Time `json:"at"`
}
