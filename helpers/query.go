package helpers

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

var sortFields = map[string]bool{
	"username":        true,
	"transactionType": true,
	"token":           true,
	"amount":          true,
	"date":            true,
}

var transactionTypes = map[string]bool{
	"Stake":  true,
	"Borrow": true,
	"Lend":   true,
}

// TransactionQuery holds the validated listing parameters.
type TransactionQuery struct {
	Page            int64
	Limit           int64
	Search          string
	SortField       string
	SortOrder       string
	TransactionType string

	startDate time.Time
	endDate   time.Time
	hasStart  bool
	hasEnd    bool
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParseTransactionQuery validates the raw query parameters and applies
// the defaults (page 1, limit 10, sort by date ascending). All
// violations are collected so the caller can report every bad field at
// once; any violation fails the whole request.
func ParseTransactionQuery(values url.Values) (*TransactionQuery, []FieldError) {
	q := &TransactionQuery{
		Page:      1,
		Limit:     10,
		SortField: "date",
		SortOrder: "asc",
	}

	var errs []FieldError

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || page < 1 {
			errs = append(errs, FieldError{Field: "page", Msg: "page must be an integer greater than or equal to 1"})
		} else {
			q.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 {
			errs = append(errs, FieldError{Field: "limit", Msg: "limit must be an integer greater than 0"})
		} else {
			q.Limit = limit
		}
	}

	q.Search = values.Get("search")

	if raw := values.Get("sortField"); raw != "" {
		if !sortFields[raw] {
			errs = append(errs, FieldError{Field: "sortField", Msg: "sortField must be one of username, transactionType, token, amount, date"})
		} else {
			q.SortField = raw
		}
	}

	if raw := values.Get("sortOrder"); raw != "" {
		if raw != "asc" && raw != "desc" {
			errs = append(errs, FieldError{Field: "sortOrder", Msg: "sortOrder must be asc or desc"})
		} else {
			q.SortOrder = raw
		}
	}

	if raw := values.Get("transactionType"); raw != "" {
		if !transactionTypes[raw] {
			errs = append(errs, FieldError{Field: "transactionType", Msg: "transactionType must be one of Stake, Borrow, Lend"})
		} else {
			q.TransactionType = raw
		}
	}

	if raw := values.Get("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: "startDate", Msg: fmt.Sprintf("startDate %q is not a valid date", raw)})
		} else {
			q.startDate = t
			q.hasStart = true
		}
	}

	if raw := values.Get("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: "endDate", Msg: fmt.Sprintf("endDate %q is not a valid date", raw)})
		} else {
			q.endDate = t
			q.hasEnd = true
		}
	}

	if errs != nil {
		return nil, errs
	}

	return q, nil
}

// Filter composes the store filter. All clauses are ANDed; the search
// clause is itself an OR across the three text fields. The date clause
// is omitted entirely when neither bound is supplied — an empty range
// document would match nothing.
func (q *TransactionQuery) Filter() bson.M {
	filter := bson.M{}

	if q.TransactionType != "" {
		filter["transactionType"] = q.TransactionType
	}

	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"transactionType": pattern},
			bson.M{"token": pattern},
		}
	}

	daterange := bson.M{}
	if q.hasStart {
		daterange["$gte"] = primitive.NewDateTimeFromTime(q.startDate)
	}
	if q.hasEnd {
		// Inclusive of the entire end day.
		y, m, d := q.endDate.Date()
		end := time.Date(y, m, d, 23, 59, 59, 999_000_000, q.endDate.Location())
		daterange["$lte"] = primitive.NewDateTimeFromTime(end)
	}
	if len(daterange) > 0 {
		filter["date"] = daterange
	}

	return filter
}

// Sort maps the sort parameters to a store sort document.
func (q *TransactionQuery) Sort() bson.M {
	order := 1
	if q.SortOrder == "desc" {
		order = -1
	}
	return bson.M{q.SortField: order}
}
