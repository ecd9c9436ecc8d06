package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestFlexTimeDecodesBSONDateTime(t *testing.T) {
	want := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	bt, data, err := bson.MarshalValue(want)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var ft FlexTime
	if err := ft.UnmarshalBSONValue(bt, data); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ft.Time().Equal(want) {
		t.Errorf("Expected %v, got %v", want, ft.Time())
	}
}

func TestFlexTimeDecodesISOString(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339", "2025-05-01T09:30:00Z", time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)},
		{"no zone", "2025-05-01T09:30:00", time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)},
		{"date only", "2025-05-01", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bt, data, err := bson.MarshalValue(tc.value)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			var ft FlexTime
			if err := ft.UnmarshalBSONValue(bt, data); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !ft.Time().Equal(tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, ft.Time())
			}
		})
	}
}

func TestFlexTimeRejectsGarbage(t *testing.T) {
	bt, data, err := bson.MarshalValue("not a timestamp")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var ft FlexTime
	if err := ft.UnmarshalBSONValue(bt, data); err == nil {
		t.Error("Expected error for unparseable string, got nil")
	}
}

func TestFlexTimeJSONRoundTrip(t *testing.T) {
	var ft FlexTime
	if err := ft.UnmarshalJSON([]byte(`"2025-05-01T09:30:00Z"`)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	if !ft.Time().Equal(want) {
		t.Errorf("Expected %v, got %v", want, ft.Time())
	}

	out, err := ft.MarshalJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(out) != `"2025-05-01T09:30:00Z"` {
		t.Errorf("Unexpected JSON: %s", out)
	}
}
