package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTriStateZeroValueIsUnknown(t *testing.T) {
	var ts TriState
	if ts != Unknown {
		t.Errorf("zero TriState = %v, want %v", ts, Unknown)
	}
	if ts.IsKnown() {
		t.Error("zero TriState reports IsKnown")
	}
}

func TestTriStateString(t *testing.T) {
	tests := []struct {
		state TriState
		want  string
	}{
		{True, "true"},
		{False, "false"},
		{Unknown, "unknown"},
		{TriState(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("TriState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestParseTriState(t *testing.T) {
	tests := []struct {
		in      string
		want    TriState
		wantErr bool
	}{
		{"true", True, false},
		{"TRUE", True, false},
		{" false ", False, false},
		{"unknown", Unknown, false},
		{"null", Unknown, true},
		{"", Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTriState(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTriState) {
					t.Fatalf("ParseTriState(%q) error = %v, want ErrInvalidTriState", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTriState(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTriState(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTriStateBoolAndPtr(t *testing.T) {
	yes, no := true, false

	if FromPtr(nil) != Unknown || FromPtr(&yes) != True || FromPtr(&no) != False {
		t.Error("FromPtr did not map nil/true/false to Unknown/True/False")
	}
	if v, ok := True.Bool(); !v || !ok {
		t.Errorf("True.Bool() = %v, %v", v, ok)
	}
	if v, ok := False.Bool(); v || !ok {
		t.Errorf("False.Bool() = %v, %v", v, ok)
	}
	if _, ok := Unknown.Bool(); ok {
		t.Error("Unknown.Bool() reports known")
	}
	if Unknown.Ptr() != nil {
		t.Error("Unknown.Ptr() is not nil")
	}
	if p := True.Ptr(); p == nil || !*p {
		t.Error("True.Ptr() does not point to true")
	}
}

func TestTriStateValue(t *testing.T) {
	tests := []struct {
		state TriState
		want  any
	}{
		{True, true},
		{False, false},
		{Unknown, nil},
	}
	for _, tt := range tests {
		got, err := tt.state.Value()
		if err != nil {
			t.Fatalf("%v.Value() error = %v", tt.state, err)
		}
		if got != tt.want {
			t.Errorf("%v.Value() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestTriStateScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    TriState
		wantErr bool
	}{
		{"nil", nil, Unknown, false},
		{"bool true", true, True, false},
		{"bool false", false, False, false},
		{"int 1", int64(1), True, false},
		{"int 0", int64(0), False, false},
		{"text null", "null", Unknown, false},
		{"bytes t", []byte("t"), True, false},
		{"text 0", "0", False, false},
		{"garbage", "maybe", Unknown, true},
		{"float", 1.5, Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := TriState(99)
			err := ts.Scan(tt.src)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTriState) {
					t.Fatalf("Scan(%v) error = %v, want ErrInvalidTriState", tt.src, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan(%v) error = %v", tt.src, err)
			}
			if ts != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.src, ts, tt.want)
			}
		})
	}
}

func TestTriStateJSON(t *testing.T) {
	type record struct {
		Profitable TriState `json:"profitable"`
	}

	data, err := json.Marshal(record{Profitable: Unknown})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"profitable":null}` {
		t.Errorf("Marshal = %s, want null for Unknown", data)
	}

	var r record
	if err := json.Unmarshal([]byte(`{"profitable":false}`), &r); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if r.Profitable != False {
		t.Errorf("Unmarshal false = %v, want False", r.Profitable)
	}

	if err := json.Unmarshal([]byte(`{"profitable":"yes"}`), &r); !errors.Is(err, ErrInvalidTriState) {
		t.Errorf("Unmarshal string error = %v, want ErrInvalidTriState", err)
	}
}
