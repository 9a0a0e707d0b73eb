package models

import (
	"database/sql/driver"
	"reflect"
	"testing"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name    string
		s       StringSlice
		wantVal driver.Value
		wantErr bool
	}{
		{
			name:    "nil slice",
			s:       nil,
			wantVal: "[]",
			wantErr: false,
		},
		{
			name:    "empty slice",
			s:       StringSlice{},
			wantVal: "[]",
			wantErr: false,
		},
		{
			name:    "slice with one element",
			s:       StringSlice{"apple"},
			wantVal: `["apple"]`,
			wantErr: false,
		},
		{
			name:    "slice with multiple elements",
			s:       StringSlice{"apple", "banana"},
			wantVal: `["apple","banana"]`,
			wantErr: false,
		},
		{
			name:    "slice with quotes and commas",
			s:       StringSlice{`say "hi"`, "a,b"},
			wantVal: `["say \"hi\"","a,b"]`,
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotVal, err := tt.s.Value()
			if (err != nil) != tt.wantErr {
				t.Errorf("StringSlice.Value() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(gotVal, tt.wantVal) {
				t.Errorf("StringSlice.Value() gotVal = %v, want %v", gotVal, tt.wantVal)
			}
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantS   StringSlice
		wantErr bool
	}{
		{
			name:    "nil input",
			value:   nil,
			wantS:   StringSlice{},
			wantErr: false,
		},
		{
			name:    "empty string input",
			value:   "",
			wantS:   StringSlice{},
			wantErr: false,
		},
		{
			name:    "null literal",
			value:   "null",
			wantS:   StringSlice{},
			wantErr: false,
		},
		{
			name:    "string input",
			value:   `["A","B","C","D"]`,
			wantS:   StringSlice{"A", "B", "C", "D"},
			wantErr: false,
		},
		{
			name:    "byte input",
			value:   []byte(`["x"]`),
			wantS:   StringSlice{"x"},
			wantErr: false,
		},
		{
			name:    "unsupported type",
			value:   42,
			wantS:   nil,
			wantErr: true,
		},
		{
			name:    "invalid json",
			value:   "not-json",
			wantS:   nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("StringSlice.Scan() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(s, tt.wantS) {
				t.Errorf("StringSlice.Scan() got = %v, want %v", s, tt.wantS)
			}
		})
	}
}

func TestStringSliceRoundTrip(t *testing.T) {
	original := StringSlice{"Paris", "London", "Berlin", "Madrid"}

	val, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded StringSlice
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip got %v, want %v", decoded, original)
	}
}
