package mapping

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/CaliLuke/go-records/records"
)

// Test models

type Point struct {
	records.Record
	X int
	Y int
}

type Money struct {
	records.Record
	Amount   int64
	Currency string
}

// WithCurrency returns a copy with a normalized currency code.
func (m Money) WithCurrency(c string) Money {
	m.Currency = strings.ToUpper(c)
	return m
}

type Interval struct {
	records.Record
	lo, hi int
}

func NewInterval(lo, hi int) (Interval, error) {
	if lo > hi {
		return Interval{}, fmt.Errorf("lo %d > hi %d", lo, hi)
	}
	return Interval{lo: lo, hi: hi}, nil
}

func (i Interval) Lo() int { return i.lo }
func (i Interval) Hi() int { return i.hi }

type Customer struct {
	Name  string
	Email string
	Tags  []string
}

type Named struct {
	Type string
}

type Celsius float64

type Reading struct {
	records.Record
	Sensor string
	Value  Celsius
	Note   *string
}

type Sample struct {
	Level int8
	Count uint16
	Ratio float32
}

// --- Test helpers ---

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func mustProperty(t *testing.T, e *PersistentEntity, name string) *PersistentProperty {
	t.Helper()
	p, err := e.RequiredPersistentProperty(name)
	if err != nil {
		t.Fatalf("RequiredPersistentProperty(%q): %v", name, err)
	}
	return p
}

func mustAccessor(t *testing.T, e *PersistentEntity, bean any) *PropertyAccessor {
	t.Helper()
	a, err := e.PropertyAccessor(bean)
	if err != nil {
		t.Fatalf("PropertyAccessor: %v", err)
	}
	return a
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected %q to contain %q", s, substr)
	}
}

func requireRecords(t *testing.T) {
	t.Helper()
	if !records.Supported() {
		t.Skipf("record support disabled by %s", records.EnvSupport)
	}
}
