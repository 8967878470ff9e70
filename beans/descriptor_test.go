package beans

import (
	"errors"
	"testing"
)

func TestNewPropertyDescriptor_ReadOnly(t *testing.T) {
	typ := typeOf[account]()
	read := FieldMethod(typ, fieldOf(t, typ, "ID"))

	pd, err := NewPropertyDescriptor("id", read, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pd.Name() != "id" {
		t.Errorf("Name: got %q, want %q", pd.Name(), "id")
	}
	if !pd.IsReadOnly() {
		t.Error("expected read-only descriptor")
	}
	if pd.ReadMethod() != read {
		t.Error("ReadMethod should be the accessor passed in")
	}
	if pd.WriteMethod() != nil {
		t.Error("WriteMethod should be nil")
	}
	if pd.PropertyType() != read.Type() {
		t.Errorf("PropertyType: got %v, want %v", pd.PropertyType(), read.Type())
	}
}

func TestNewPropertyDescriptor_Rejects(t *testing.T) {
	typ := typeOf[account]()
	id := FieldMethod(typ, fieldOf(t, typ, "ID"))
	balance := FieldMethod(typ, fieldOf(t, typ, "Balance"))
	getter, _ := GetterMethod(typeOf[counter](), "N")
	setter, _ := SetterMethod(typeOf[counter](), "SetN")
	otherSetter, _ := SetterMethod(typeOf[counter](), "SetLabel")

	tests := []struct {
		name   string
		prop   string
		read   *Method
		write  *Method
		reason string
	}{
		{"no methods", "x", nil, nil, "neither read nor write"},
		{"empty name", "", id, nil, "bad property name"},
		{"invalid name", "birth-date", id, nil, "bad property name"},
		{"reserved name", "nil", id, nil, "reserved property name"},
		{"blank name", "_", id, nil, "reserved property name"},
		{"type mismatch", "id", id, balance, "type mismatch"},
		{"setter as read", "n", setter, nil, "is a setter"},
		{"getter as write", "n", nil, getter, "is a getter"},
		{"foreign write", "id", id, otherSetter, "write method belongs to"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPropertyDescriptor(tt.prop, tt.read, tt.write)
			if err == nil {
				t.Fatal("expected error")
			}
			var ie *IntrospectionError
			if !errors.As(err, &ie) {
				t.Fatalf("expected IntrospectionError, got %T: %v", err, err)
			}
			assertContains(t, err.Error(), tt.reason)
		})
	}
}

func TestNewPropertyDescriptor_InvalidNameUnwraps(t *testing.T) {
	typ := typeOf[account]()
	_, err := NewPropertyDescriptor("1st", FieldMethod(typ, fieldOf(t, typ, "ID")), nil)
	var iie *InvalidIdentifierError
	if !errors.As(err, &iie) {
		t.Fatalf("expected wrapped InvalidIdentifierError, got %T: %v", err, err)
	}
}

func TestPropertyDescriptor_Equal(t *testing.T) {
	typ := typeOf[account]()
	a, _ := NewPropertyDescriptor("id", FieldMethod(typ, fieldOf(t, typ, "ID")), nil)
	b, _ := NewPropertyDescriptor("id", FieldMethod(typ, fieldOf(t, typ, "ID")), nil)
	c, _ := NewPropertyDescriptor("id", FieldMethod(typ, fieldOf(t, typ, "ID")), FieldMethod(typ, fieldOf(t, typ, "ID")))

	if !a.Equal(b) {
		t.Error("expected equal descriptors")
	}
	if a.Equal(c) {
		t.Error("read-only and read/write descriptors should differ")
	}
}
