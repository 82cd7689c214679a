package helpers

import (
	"testing"

	"github.com/stakex/StakeX/models"
)

func fieldSet(errs []FieldError) map[string]string {
	m := map[string]string{}
	for _, e := range errs {
		m[e.Field] = e.Msg
	}
	return m
}

func TestValidateCreateTransaction(t *testing.T) {
	tx := models.Transaction{
		Username:        "alice",
		TransactionType: models.Stake,
		Token:           "ETH",
		Amount:          1.5,
	}

	if errs := ValidateStruct(&tx); errs != nil {
		t.Fatalf("valid record rejected: %v", errs)
	}
}

func TestValidateCreateRejectsUnknownType(t *testing.T) {
	tx := models.Transaction{
		Username:        "alice",
		TransactionType: "Swap",
		Token:           "ETH",
		Amount:          1.5,
	}

	errs := ValidateStruct(&tx)
	if errs == nil {
		t.Fatal("expected a validation error for transactionType Swap")
	}

	fields := fieldSet(errs)
	if _, ok := fields["transactionType"]; !ok {
		t.Fatalf("want an error on transactionType, got %v", errs)
	}
}

func TestValidateCreateCollectsMissingFields(t *testing.T) {
	tx := models.Transaction{}

	errs := ValidateStruct(&tx)
	fields := fieldSet(errs)

	for _, field := range []string{"username", "transactionType", "token", "amount"} {
		if _, ok := fields[field]; !ok {
			t.Errorf("want an error on %s, got %v", field, errs)
		}
	}
}

func TestValidateCreateRejectsUnknownStatus(t *testing.T) {
	tx := models.Transaction{
		Username:        "alice",
		TransactionType: models.Lend,
		Token:           "ETH",
		Amount:          2,
		Status:          "finished",
	}

	errs := ValidateStruct(&tx)
	if _, ok := fieldSet(errs)["status"]; !ok {
		t.Fatalf("want an error on status, got %v", errs)
	}
}

func TestValidateUpdateSkipsAbsentFields(t *testing.T) {
	update := models.TransactionUpdate{}

	if errs := ValidateStruct(&update); errs != nil {
		t.Fatalf("empty update rejected: %v", errs)
	}

	amount := models.Amount(3.2)
	update = models.TransactionUpdate{Amount: &amount}
	if errs := ValidateStruct(&update); errs != nil {
		t.Fatalf("amount-only update rejected: %v", errs)
	}
}

func TestValidateUpdateChecksPresentFields(t *testing.T) {
	empty := ""
	badType := models.TransactionType("Swap")

	update := models.TransactionUpdate{
		Username:        &empty,
		TransactionType: &badType,
	}

	fields := fieldSet(ValidateStruct(&update))
	if _, ok := fields["username"]; !ok {
		t.Error("want an error on empty username")
	}
	if _, ok := fields["transactionType"]; !ok {
		t.Error("want an error on transactionType Swap")
	}
}
