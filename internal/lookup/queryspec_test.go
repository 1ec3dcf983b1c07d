package lookup

import (
	"reflect"
	"testing"

	"github.com/eagleinfo/business-api/internal/identifier"
)

func TestBuildLookup(t *testing.T) {
	tests := []struct {
		name        string
		id          identifier.Canonical
		columns     []string
		mode        PredicateMode
		params      []interface{}
		cardinality Cardinality
		limit       int
	}{
		{
			name:        "domain folds case on site",
			id:          identifier.Canonical{Kind: identifier.KindDomain, Value: "example.com"},
			columns:     []string{"site"},
			mode:        ModeEQFold,
			params:      []interface{}{"example.com"},
			cardinality: Many,
			limit:       100,
		},
		{
			name:        "linkedin matches slug exactly",
			id:          identifier.Canonical{Kind: identifier.KindLinkedin, Value: "company/acme"},
			columns:     []string{"linkedin"},
			mode:        ModeEQ,
			params:      []interface{}{"company/acme"},
			cardinality: Many,
			limit:       100,
		},
		{
			name:        "place id expects a unique row",
			id:          identifier.Canonical{Kind: identifier.KindPlaceID, Value: "ChIJN1t_tDeuEmsRUsoyG83frY4"},
			columns:     []string{"place_id"},
			mode:        ModeEQ,
			params:      []interface{}{"ChIJN1t_tDeuEmsRUsoyG83frY4"},
			cardinality: AtMostOne,
			limit:       2,
		},
		{
			name:        "email binds the value once per column",
			id:          identifier.Canonical{Kind: identifier.KindEmail, Value: "a@example.com"},
			columns:     []string{"email_1", "email_2", "email_3"},
			mode:        ModeOrAcross,
			params:      []interface{}{"a@example.com", "a@example.com", "a@example.com"},
			cardinality: AtMostOne,
			limit:       2,
		},
		{
			name:        "google id spans all three identifier columns",
			id:          identifier.Canonical{Kind: identifier.KindGoogleID, Value: "0x89c25a31e6d2f1b7:0x68"},
			columns:     []string{"google_id", "cid", "kgmid"},
			mode:        ModeOrAcross,
			params:      []interface{}{"0x89c25a31e6d2f1b7:0x68", "0x89c25a31e6d2f1b7:0x68", "0x89c25a31e6d2f1b7:0x68"},
			cardinality: Many,
			limit:       100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := BuildLookup(tt.id)
			if err != nil {
				t.Fatalf("BuildLookup(%v) returned error: %v", tt.id, err)
			}
			if !reflect.DeepEqual(spec.Columns, tt.columns) {
				t.Errorf("Columns = %v, want %v", spec.Columns, tt.columns)
			}
			if spec.Mode != tt.mode {
				t.Errorf("Mode = %v, want %v", spec.Mode, tt.mode)
			}
			if !reflect.DeepEqual(spec.Params, tt.params) {
				t.Errorf("Params = %v, want %v", spec.Params, tt.params)
			}
			if spec.Cardinality != tt.cardinality {
				t.Errorf("Cardinality = %v, want %v", spec.Cardinality, tt.cardinality)
			}
			if spec.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", spec.Limit, tt.limit)
			}
			if spec.Offset != 0 {
				t.Errorf("Offset = %d, want 0", spec.Offset)
			}
		})
	}
}

func TestBuildLookupUnknownKind(t *testing.T) {
	_, err := BuildLookup(identifier.Canonical{Kind: "phone", Value: "555-0100"})
	if err == nil {
		t.Fatal("expected error for unknown identifier kind")
	}
}

func TestBuildBatchEmail(t *testing.T) {
	addrs := []string{"a@example.com", "b@example.com"}
	spec := BuildBatchEmail(addrs)

	if !reflect.DeepEqual(spec.Columns, []string{"email_1", "email_2", "email_3"}) {
		t.Errorf("Columns = %v", spec.Columns)
	}
	if spec.Mode != ModeInSet {
		t.Errorf("Mode = %v, want ModeInSet", spec.Mode)
	}
	if len(spec.Params) != 3 {
		t.Fatalf("Params length = %d, want one set per column", len(spec.Params))
	}
	for i, p := range spec.Params {
		if !reflect.DeepEqual(p, addrs) {
			t.Errorf("Params[%d] = %v, want %v", i, p, addrs)
		}
	}
	if spec.Cardinality != Many {
		t.Errorf("Cardinality = %v, want Many", spec.Cardinality)
	}
	if spec.Limit != 1000 {
		t.Errorf("Limit = %d, want 1000", spec.Limit)
	}
}

func TestBuildEnrichedScan(t *testing.T) {
	spec := BuildEnrichedScan(Page{Limit: 50, Offset: 200})

	if !reflect.DeepEqual(spec.Columns, []string{"email_1"}) {
		t.Errorf("Columns = %v, want [email_1]", spec.Columns)
	}
	if spec.Mode != ModeNotNull {
		t.Errorf("Mode = %v, want ModeNotNull", spec.Mode)
	}
	if len(spec.Params) != 0 {
		t.Errorf("Params = %v, want none", spec.Params)
	}
	if spec.Limit != 50 || spec.Offset != 200 {
		t.Errorf("Limit/Offset = %d/%d, want 50/200", spec.Limit, spec.Offset)
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"zero limit falls back to default", 0, 0, 100, 0},
		{"negative limit falls back to default", -1, 0, 100, 0},
		{"oversized limit clamps to max", 10000, 0, 500, 0},
		{"limit at max passes through", 500, 0, 500, 0},
		{"limit just over max clamps", 501, 0, 500, 0},
		{"negative offset clamps to zero", 100, -5, 100, 0},
		{"in-range values pass through", 250, 1000, 250, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.limit, tt.offset)
			if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("NewPage(%d, %d) = %+v, want limit %d offset %d",
					tt.limit, tt.offset, p, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestPredicateModeString(t *testing.T) {
	tests := []struct {
		mode PredicateMode
		want string
	}{
		{ModeEQ, "eq"},
		{ModeEQFold, "eq_fold"},
		{ModeInSet, "in_set"},
		{ModeOrAcross, "or_across"},
		{ModeNotNull, "not_null"},
		{PredicateMode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("PredicateMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
