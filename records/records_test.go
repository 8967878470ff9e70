package records

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/CaliLuke/go-records/beans"
)

// Test records

type Point struct {
	Record
	X int
	Y int
}

type Person struct {
	Record
	Name      string
	BirthYear int `beans:"born"`
	URL       string
}

type Temperature struct {
	Record
	celsius float64
	Unit    string
}

func (t Temperature) Celsius() float64 { return t.celsius }

type Empty struct {
	Record
}

type mutablePoint struct {
	X, Y int
}

// Broken records

type missingAccessor struct {
	Record
	secret string
}

type wrongAccessor struct {
	Record
	count int
}

func (w wrongAccessor) Count() string { return "" }

type reservedComponent struct {
	Record
	Nil bool
}

type skippedComponent struct {
	Record
	A int
	B int `beans:"-"`
}

type inherits struct {
	Record
	Point
}

// --- Test helpers ---

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func names(descriptors []*beans.PropertyDescriptor) []string {
	out := make([]string, len(descriptors))
	for i, pd := range descriptors {
		out[i] = pd.Name()
	}
	return out
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected %q to contain %q", s, substr)
	}
}

func TestIsRecord(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{typeOf[Point](), true},
		{typeOf[*Point](), true},
		{typeOf[Empty](), true},
		{typeOf[mutablePoint](), false},
		{typeOf[Record](), false},
		{typeOf[int](), false},
		{typeOf[[]Point](), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsRecord(tt.typ); got != tt.want {
			t.Errorf("IsRecord(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder = Point{}
	if _, ok := r.(Point); !ok {
		t.Error("expected Point to satisfy Recorder")
	}
}

func TestComponents_DeclarationOrder(t *testing.T) {
	components, err := Components(typeOf[Person]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, c := range components {
		got = append(got, c.Name)
	}
	want := []string{"name", "born", "URL"}
	if !slices.Equal(got, want) {
		t.Errorf("components: got %v, want %v", got, want)
	}
	if components[1].Field.Name != "BirthYear" {
		t.Errorf("Field: got %q, want %q", components[1].Field.Name, "BirthYear")
	}
}

func TestComponents_UnexportedUsesGetter(t *testing.T) {
	components, err := Components(typeOf[Temperature]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(components) != 2 {
		t.Fatalf("components: got %d, want 2", len(components))
	}
	celsius := components[0]
	if celsius.Name != "celsius" {
		t.Errorf("Name: got %q, want %q", celsius.Name, "celsius")
	}
	if celsius.Accessor.IsField() || celsius.Accessor.Name() != "Celsius" {
		t.Errorf("expected the Celsius() accessor, got %s", celsius.Accessor.Name())
	}

	v, err := celsius.Accessor.Get(reflect.ValueOf(Temperature{celsius: 21.5}))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Float() != 21.5 {
		t.Errorf("celsius: got %v, want 21.5", v.Float())
	}
}

func TestComponents_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		typ    reflect.Type
		reason string
	}{
		{"missing accessor", typeOf[missingAccessor](), "no accessor method Secret()"},
		{"wrong accessor type", typeOf[wrongAccessor](), "returns string, want int"},
		{"skipped component", typeOf[skippedComponent](), "cannot be skipped"},
		{"embedded type", typeOf[inherits](), "cannot embed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Components(tt.typ)
			var ire *InvalidRecordError
			if !errors.As(err, &ire) {
				t.Fatalf("expected InvalidRecordError, got %T: %v", err, err)
			}
			assertContains(t, err.Error(), tt.reason)
		})
	}
}

func TestComponents_NotRecord(t *testing.T) {
	_, err := Components(typeOf[mutablePoint]())
	var nre *NotRecordError
	if !errors.As(err, &nre) {
		t.Fatalf("expected NotRecordError, got %T: %v", err, err)
	}
}

func typeOfValue(v any) reflect.Type {
	return reflect.TypeOf(v)
}
