package beans

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// Test types

type account struct {
	ID      string
	Balance int64  `beans:"amount"`
	Secret  string `beans:"-"`
	note    string
	Created time.Time
}

type counter struct {
	n     int
	label string
}

func (c counter) N() int { return c.n }
func (c *counter) SetN(n int) { c.n = n }
func (c *counter) Label() string { return c.label }
func (c *counter) SetLabel(s string) { c.label = s }
func (c counter) Total() int { return c.n * 2 }
func (c *counter) Set(n int) { c.n = n }
func (c *counter) SetOrphan(v string) {}

type mismatched struct {
	v int
}

func (m mismatched) V() int { return m.v }
func (m *mismatched) SetV(v string) {}

type embedded struct {
	account
	Name string
}

// --- Test helpers ---

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func fieldOf(t *testing.T, typ reflect.Type, name string) reflect.StructField {
	t.Helper()
	f, ok := typ.FieldByName(name)
	if !ok {
		t.Fatalf("%s has no field %s", typ, name)
	}
	return f
}

func names(descriptors []*PropertyDescriptor) []string {
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
