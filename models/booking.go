package models

import "time"

// Booking lifecycle states.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusDeclined  = "declined"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is a client's engagement of a creative for a concrete date
// and time window. Date is "2006-01-02"; times are "HH:MM" clock
// values within that date.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	CreativeID string    `bson:"creativeId" json:"creativeId"`
	Date       string    `bson:"date" json:"date"`
	StartTime  string    `bson:"startTime" json:"startTime"`
	EndTime    string    `bson:"endTime" json:"endTime"`
	Brief      string    `bson:"brief,omitempty" json:"brief,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the payload for POST /api/bookings.
type BookingRequest struct {
	CreativeID string `json:"creativeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	Brief      string `json:"brief"`
}

// ReminderPayload is the asynq task body for booking reminders.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	ClientID   string `json:"clientId"`
	CreativeID string `json:"creativeId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}
