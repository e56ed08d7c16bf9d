package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TimestampLayout - единственный текстовый формат времени в хранилище.
// Фиксированная ширина и UTC: лексикографический порядок совпадает с временным.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp сериализует время для записи в хранилище
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp разбирает время из хранилища. Помимо основного формата
// принимаются любые RFC 3339 строки (старые записи со смещением +00:00).
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// старые записи могли сохраняться без смещения
		t, err = time.Parse("2006-01-02T15:04:05.999999999", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("unsupported timestamp %q: %w", s, err)
		}
	}
	return t.UTC(), nil
}

// storedTime пишется в BSON строкой TimestampLayout и читается как из строки,
// так и из BSON datetime.
type storedTime time.Time

func (t storedTime) Time() time.Time {
	return time.Time(t).UTC()
}

func (t storedTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(FormatTimestamp(time.Time(t)))
}

func (t *storedTime) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: typ, Value: data}
	switch typ {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*t = storedTime(parsed)
	case bsontype.DateTime:
		ms, _ := raw.DateTimeOK()
		*t = storedTime(time.UnixMilli(ms).UTC())
	case bsontype.Null, bsontype.Undefined:
		*t = storedTime(time.Time{})
	default:
		return fmt.Errorf("cannot decode %s into timestamp", typ)
	}
	return nil
}

// olderThan строит фильтр по полю времени, покрывающий оба представления:
// строки сравниваются со строкой, старые BSON datetime - с датой.
func olderThan(field string, cutoff time.Time) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{field: bson.M{"$lt": FormatTimestamp(cutoff)}},
		bson.M{field: bson.M{"$lt": cutoff.UTC()}},
	}}
}
