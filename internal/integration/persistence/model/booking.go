// Package model defines database models for persistence layer.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// BookingModel represents the bookings table in the database.
// Numeric columns are nullable; a NULL becomes a missing value in the entity.
type BookingModel struct {
	RowID        uint                `gorm:"column:row_id;primaryKey;autoIncrement"`
	RecordID     *string             `gorm:"column:record_id;type:varchar(64);index"`
	RecordIDKind string              `gorm:"column:record_id_kind;type:varchar(8)"`
	PickupDate   string              `gorm:"type:varchar(10);index"`
	BranchOffice string              `gorm:"type:varchar(100);index"`
	Agent        string              `gorm:"type:varchar(100)"`
	Channel      string              `gorm:"type:varchar(100)"`
	Provider     string              `gorm:"type:varchar(100)"`
	Revenue      decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	Ancillaries  decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	DurationDays *int64
}

// TableName returns the table name for the BookingModel.
func (BookingModel) TableName() string {
	return "bookings"
}

// ToEntity converts a BookingModel to a domain Booking entity.
func (m *BookingModel) ToEntity() entity.Booking {
	return entity.Booking{
		ID:           idFromColumns(m.RecordID, m.RecordIDKind),
		PickupDate:   m.PickupDate,
		BranchOffice: m.BranchOffice,
		Agent:        m.Agent,
		Channel:      m.Channel,
		Provider:     m.Provider,
		Revenue:      valueobject.AmountFromNullDecimal(m.Revenue),
		Ancillaries:  valueobject.AmountFromNullDecimal(m.Ancillaries),
		DurationDays: valueobject.DaysFromNullInt(m.DurationDays),
	}
}

// BookingFromEntity creates a BookingModel from a domain Booking entity.
func BookingFromEntity(b entity.Booking) *BookingModel {
	var duration *int64
	if b.DurationDays.Valid() {
		n := b.DurationDays.Int()
		duration = &n
	}

	recordID, recordIDKind := idToColumns(b.ID)

	return &BookingModel{
		RecordID:     recordID,
		RecordIDKind: recordIDKind,
		PickupDate:   b.PickupDate,
		BranchOffice: b.BranchOffice,
		Agent:        b.Agent,
		Channel:      b.Channel,
		Provider:     b.Provider,
		Revenue:      b.Revenue.NullDecimal(),
		Ancillaries:  b.Ancillaries.NullDecimal(),
		DurationDays: duration,
	}
}

// IncidentModel represents the incidents table in the database.
type IncidentModel struct {
	RowID      uint                `gorm:"column:row_id;primaryKey;autoIncrement"`
	BookingID     *string             `gorm:"type:varchar(64);index"`
	BookingIDKind string              `gorm:"type:varchar(8)"`
	TotalPrice    decimal.NullDecimal `gorm:"type:decimal(15,2)"`
}

// TableName returns the table name for the IncidentModel.
func (IncidentModel) TableName() string {
	return "incidents"
}

// ToEntity converts an IncidentModel to a domain Incident entity.
func (m *IncidentModel) ToEntity() entity.Incident {
	return entity.Incident{
		BookingID:  idFromColumns(m.BookingID, m.BookingIDKind),
		TotalPrice: valueobject.AmountFromNullDecimal(m.TotalPrice),
	}
}

// IncidentFromEntity creates an IncidentModel from a domain Incident entity.
func IncidentFromEntity(i entity.Incident) *IncidentModel {
	bookingID, bookingIDKind := idToColumns(i.BookingID)

	return &IncidentModel{
		BookingID:     bookingID,
		BookingIDKind: bookingIDKind,
		TotalPrice:    i.TotalPrice.NullDecimal(),
	}
}

// idToColumns splits an identity into its value and kind columns.
// A missing identity is stored as NULL.
func idToColumns(id valueobject.RecordID) (*string, string) {
	if !id.Present() {
		return nil, ""
	}
	value := id.String()
	return &value, id.Kind().String()
}

// idFromColumns rebuilds an identity. Rows without a kind are strings.
func idFromColumns(value *string, kind string) valueobject.RecordID {
	if value == nil {
		return valueobject.RecordID{}
	}
	return valueobject.RecordIDOf(kind, *value)
}
