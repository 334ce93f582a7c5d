package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"reflect"
)

// Optional marks whether a request field was supplied. Absent keys and JSON
// null both decode to the unset state; as a query argument an unset value is
// SQL NULL.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// IsSet reports whether the field was supplied with a non-null value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was supplied.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the supplied value or def.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// NonZero returns o unset when it holds a zero value ("", 0, false, a zero
// decimal).
func (o Optional[T]) NonZero() Optional[T] {
	if !o.set {
		return o
	}
	if z, ok := any(o.value).(interface{ IsZero() bool }); ok {
		if z.IsZero() {
			return Optional[T]{}
		}
		return o
	}
	if reflect.ValueOf(&o.value).Elem().IsZero() {
		return Optional[T]{}
	}
	return o
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Value implements driver.Valuer. Nested valuers such as decimal.Decimal are
// unwrapped because database/sql does not do it for us.
func (o Optional[T]) Value() (driver.Value, error) {
	if !o.set {
		return nil, nil
	}
	if valuer, ok := any(o.value).(driver.Valuer); ok {
		return valuer.Value()
	}
	return driver.DefaultParameterConverter.ConvertValue(o.value)
}
