package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionType string

const (
	Stake  TransactionType = "Stake"
	Borrow TransactionType = "Borrow"
	Lend   TransactionType = "Lend"
)

type TransactionStatus string

const (
	StatusWaiting    TransactionStatus = "waiting"
	StatusSuccessful TransactionStatus = "successful"
	StatusCanceled   TransactionStatus = "canceled"
)

// Amount is stored as a double but clients may send it as a quoted
// numeric string, so it accepts both on decode.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*a = Amount(v)
		return nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("amount must be numeric")
		}
		*a = Amount(f)
		return nil
	default:
		return fmt.Errorf("amount must be numeric")
	}
}

type Transaction struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username        string             `json:"username" bson:"username" validate:"required"`
	TransactionType TransactionType    `json:"transactionType" bson:"transactionType" validate:"required,oneof=Stake Borrow Lend"`
	Token           string             `json:"token" bson:"token" validate:"required"`
	Amount          Amount             `json:"amount" bson:"amount" validate:"required"`
	Date            time.Time          `json:"date" bson:"date"`
	Status          TransactionStatus  `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=waiting successful canceled"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
}

// TransactionUpdate carries a partial update. Nil fields are left
// untouched; present fields must pass the same checks as on create.
type TransactionUpdate struct {
	Username        *string            `json:"username" validate:"omitnil,min=1"`
	TransactionType *TransactionType   `json:"transactionType" validate:"omitnil,oneof=Stake Borrow Lend"`
	Token           *string            `json:"token" validate:"omitnil,min=1"`
	Amount          *Amount            `json:"amount"`
	Date            *time.Time         `json:"date"`
	Status          *TransactionStatus `json:"status" validate:"omitnil,oneof=waiting successful canceled"`
	Description     *string            `json:"description"`
}

// SetFields maps the supplied fields onto a $set document.
func (tu *TransactionUpdate) SetFields() map[string]interface{} {
	set := map[string]interface{}{}

	if tu.Username != nil {
		set["username"] = *tu.Username
	}
	if tu.TransactionType != nil {
		set["transactionType"] = *tu.TransactionType
	}
	if tu.Token != nil {
		set["token"] = *tu.Token
	}
	if tu.Amount != nil {
		set["amount"] = *tu.Amount
	}
	if tu.Date != nil {
		set["date"] = *tu.Date
	}
	if tu.Status != nil {
		set["status"] = *tu.Status
	}
	if tu.Description != nil {
		set["description"] = *tu.Description
	}

	return set
}
