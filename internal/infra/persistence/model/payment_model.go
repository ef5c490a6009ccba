package model

import (
	"time"

	"assetverse/internal/domain/entity"
)

// PaymentModel is the payments collection document. Email is the upsert
// key, so no ObjectID round-trip is needed.
type PaymentModel struct {
	Email  string    `bson:"email"`
	Plan   string    `bson:"plan"`
	Amount float64   `bson:"amount"`
	Status string    `bson:"status"`
	PaidAt time.Time `bson:"paidAt"`
}

func ToPaymentDomain(m *PaymentModel) *entity.PaymentRecord {
	return &entity.PaymentRecord{
		Email:  m.Email,
		Plan:   m.Plan,
		Amount: m.Amount,
		Status: m.Status,
		PaidAt: m.PaidAt,
	}
}

func FromPaymentDomain(record *entity.PaymentRecord) *PaymentModel {
	return &PaymentModel{
		Email:  record.Email,
		Plan:   record.Plan,
		Amount: record.Amount,
		Status: record.Status,
		PaidAt: record.PaidAt,
	}
}
