package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: test\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "test" || s.Count != 3 {
		t.Errorf("Unmarshal() = %+v, want {test 3}", s)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "nil data", data: nil, dest: &sample{}, wantErr: ErrNilData},
		{name: "empty data", data: []byte{}, dest: &sample{}, wantErr: ErrNilData},
		{name: "nil destination", data: []byte("a: 1"), dest: nil, wantErr: ErrNilDestination},
		{
			name:    "oversized input",
			data:    []byte("name: " + strings.Repeat("x", MaxInputSize)),
			dest:    &sample{},
			wantErr: ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Unmarshal(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: x\nbogus: true\n"), &s)
	if err == nil {
		t.Error("UnmarshalStrict() accepted unknown field, want error")
	}
}

func TestUnmarshalStrictValid(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: ok\n"), &s); err != nil {
		t.Errorf("UnmarshalStrict() error = %v", err)
	}
	if s.Name != "ok" {
		t.Errorf("Name = %q, want %q", s.Name, "ok")
	}
}
