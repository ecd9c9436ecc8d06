package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime decodes timestamps written either as native BSON datetimes or as
// ISO-8601 strings. Legacy attempt documents carry string timestamps, newer
// ones carry real datetimes; both must aggregate the same way.
type FlexTime time.Time

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t FlexTime) Time() time.Time {
	return time.Time(t)
}

func (t FlexTime) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(t))
}

func (t *FlexTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.DateTime:
		*t = FlexTime(rv.Time())
		return nil
	case bsontype.String:
		parsed, err := parseFlexString(rv.StringValue())
		if err != nil {
			return err
		}
		*t = FlexTime(parsed)
		return nil
	case bsontype.Null:
		*t = FlexTime(time.Time{})
		return nil
	default:
		return fmt.Errorf("cannot decode %s as timestamp", bt)
	}
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = FlexTime(time.Time{})
		return nil
	}
	if len(data) >= 2 && data[0] == '"' {
		parsed, err := parseFlexString(string(data[1 : len(data)-1]))
		if err != nil {
			return err
		}
		*t = FlexTime(parsed)
		return nil
	}
	return fmt.Errorf("cannot decode %s as timestamp", string(data))
}

func parseFlexString(s string) (time.Time, error) {
	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format %q", s)
}
