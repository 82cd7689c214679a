package helpers

import (
	"net/url"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustParse(t *testing.T, raw string) *TransactionQuery {
	t.Helper()
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("bad query string %q: %v", raw, err)
	}
	q, errs := ParseTransactionQuery(values)
	if errs != nil {
		t.Fatalf("unexpected validation errors for %q: %v", raw, errs)
	}
	return q
}

func TestParseDefaults(t *testing.T) {
	q := mustParse(t, "")

	if q.Page != 1 {
		t.Errorf("default page: want 1 got %d", q.Page)
	}
	if q.Limit != 10 {
		t.Errorf("default limit: want 10 got %d", q.Limit)
	}
	if q.SortField != "date" {
		t.Errorf("default sortField: want date got %s", q.SortField)
	}
	if q.SortOrder != "asc" {
		t.Errorf("default sortOrder: want asc got %s", q.SortOrder)
	}
}

func TestParseRejectsBadParams(t *testing.T) {
	cases := []struct {
		query string
		field string
	}{
		{"page=0", "page"},
		{"page=abc", "page"},
		{"limit=0", "limit"},
		{"limit=-5", "limit"},
		{"sortField=status", "sortField"},
		{"sortOrder=up", "sortOrder"},
		{"transactionType=Swap", "transactionType"},
		{"startDate=notadate", "startDate"},
		{"endDate=2024-13-99", "endDate"},
	}

	for _, c := range cases {
		values, _ := url.ParseQuery(c.query)
		q, errs := ParseTransactionQuery(values)
		if errs == nil {
			t.Errorf("%s: expected a validation error", c.query)
			continue
		}
		if q != nil {
			t.Errorf("%s: expected no query alongside errors", c.query)
		}
		if errs[0].Field != c.field {
			t.Errorf("%s: want error on %s, got %s", c.query, c.field, errs[0].Field)
		}
	}
}

func TestParseCollectsAllErrors(t *testing.T) {
	values, _ := url.ParseQuery("page=0&limit=x&sortField=bogus")
	_, errs := ParseTransactionQuery(values)

	if len(errs) != 3 {
		t.Fatalf("want 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestFilterEmptyWhenUnconstrained(t *testing.T) {
	filter := mustParse(t, "page=2&limit=5").Filter()

	if len(filter) != 0 {
		t.Fatalf("want empty filter, got %v", filter)
	}
	if _, ok := filter["date"]; ok {
		t.Fatal("date clause must be absent when no bounds are given")
	}
}

func TestFilterTransactionType(t *testing.T) {
	filter := mustParse(t, "transactionType=Stake").Filter()

	if filter["transactionType"] != "Stake" {
		t.Fatalf("want exact type match, got %v", filter["transactionType"])
	}
}

func TestFilterSearchIsCaseInsensitiveOr(t *testing.T) {
	filter := mustParse(t, "search=eth").Filter()

	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("want $or clause, got %v", filter)
	}
	if len(or) != 3 {
		t.Fatalf("want 3 branches, got %d", len(or))
	}

	fields := map[string]bool{}
	for _, branch := range or {
		for field, v := range branch.(bson.M) {
			fields[field] = true
			re := v.(primitive.Regex)
			if re.Pattern != "eth" {
				t.Errorf("%s: want pattern eth, got %q", field, re.Pattern)
			}
			if re.Options != "i" {
				t.Errorf("%s: want case-insensitive match, got options %q", field, re.Options)
			}
		}
	}
	for _, field := range []string{"username", "transactionType", "token"} {
		if !fields[field] {
			t.Errorf("missing search branch for %s", field)
		}
	}
}

func TestFilterSearchEscapesRegexMeta(t *testing.T) {
	filter := mustParse(t, "search=a.b").Filter()

	or := filter["$or"].(bson.A)
	re := or[0].(bson.M)["username"].(primitive.Regex)
	if re.Pattern != `a\.b` {
		t.Fatalf("want escaped pattern, got %q", re.Pattern)
	}
}

func TestFilterDateRangeInclusiveOfEndDay(t *testing.T) {
	filter := mustParse(t, "startDate=2024-01-10&endDate=2024-01-10").Filter()

	daterange, ok := filter["date"].(bson.M)
	if !ok {
		t.Fatalf("want date clause, got %v", filter)
	}

	gte := daterange["$gte"].(primitive.DateTime)
	lte := daterange["$lte"].(primitive.DateTime)

	inRange := func(ts time.Time) bool {
		dt := primitive.NewDateTimeFromTime(ts)
		return dt >= gte && dt <= lte
	}

	if !inRange(time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)) {
		t.Error("2024-01-10T23:00:00 should fall inside the range")
	}
	if inRange(time.Date(2024, 1, 11, 0, 0, 1, 0, time.UTC)) {
		t.Error("2024-01-11T00:00:01 should fall outside the range")
	}
	if !inRange(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Error("start of day should fall inside the range")
	}
}

func TestFilterStartDateOnly(t *testing.T) {
	filter := mustParse(t, "startDate=2024-01-10").Filter()

	daterange := filter["date"].(bson.M)
	if _, ok := daterange["$gte"]; !ok {
		t.Error("want $gte bound")
	}
	if _, ok := daterange["$lte"]; ok {
		t.Error("want no $lte bound when endDate is absent")
	}
}

func TestSortMapping(t *testing.T) {
	cases := []struct {
		query string
		field string
		order int
	}{
		{"", "date", 1},
		{"sortField=amount&sortOrder=desc", "amount", -1},
		{"sortField=username", "username", 1},
		{"sortOrder=desc", "date", -1},
	}

	for _, c := range cases {
		sort := mustParse(t, c.query).Sort()
		if got := sort[c.field]; got != c.order {
			t.Errorf("%q: want %s:%d, got %v", c.query, c.field, c.order, sort)
		}
		if len(sort) != 1 {
			t.Errorf("%q: want a single sort key, got %v", c.query, sort)
		}
	}
}

func TestPaginateSkip(t *testing.T) {
	cases := []struct {
		limit, page, skip int64
	}{
		{10, 1, 0},
		{10, 3, 20},
		{25, 2, 25},
	}

	for _, c := range cases {
		mp := NewMongoPaginate(c.limit, c.page, nil)
		if got := mp.Skip(); got != c.skip {
			t.Errorf("limit=%d page=%d: want skip %d got %d", c.limit, c.page, c.skip, got)
		}
		opts := mp.BuildFindOptions()
		if *opts.Limit != c.limit {
			t.Errorf("limit=%d: find options carry limit %d", c.limit, *opts.Limit)
		}
		if *opts.Skip != c.skip {
			t.Errorf("page=%d: find options carry skip %d", c.page, *opts.Skip)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 7, 15},
	}

	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Errorf("TotalPages(%d, %d): want %d got %d", c.total, c.limit, c.want, got)
		}
	}
}
