package conan

import (
	"reflect"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "plain version line",
			input:  "Conan version 1.34.0\n",
			want:   "1.34.0",
			wantOK: true,
		},
		{
			name:   "surrounded by other output",
			input:  "WARN: migrating cache\nConan version 1.59.0\n",
			want:   "1.59.0",
			wantOK: true,
		},
		{
			name:   "no version token",
			input:  "usage: conan [-h] ...\n",
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVersion(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseVersion() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func TestParseRemotes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []Remote
		wantOK bool
	}{
		{
			name:  "single remote",
			input: "conan-center https://center.conan.io True\n",
			want: []Remote{
				{Name: "conan-center", URL: "https://center.conan.io", VerifySSL: boolPtr(true)},
			},
			wantOK: true,
		},
		{
			name: "multiple remotes preserve order",
			input: "conan-center https://center.conan.io True\n" +
				"internal https://conan.example.com False\n",
			want: []Remote{
				{Name: "conan-center", URL: "https://center.conan.io", VerifySSL: boolPtr(true)},
				{Name: "internal", URL: "https://conan.example.com", VerifySSL: boolPtr(false)},
			},
			wantOK: true,
		},
		{
			name:   "empty listing",
			input:  "",
			want:   []Remote{},
			wantOK: true,
		},
		{
			name: "malformed second line discards everything",
			input: "conan-center https://center.conan.io True\n" +
				"broken https://example.com\n",
			wantOK: false,
		},
		{
			name:   "lowercase boolean rejected",
			input:  "r https://example.com true\n",
			wantOK: false,
		},
		{
			name:   "blank interior line rejected",
			input:  "a https://a.example True\n\nb https://b.example False\n",
			wantOK: false,
		},
		{
			name:   "trailing tokens after verify flag rejected",
			input:  "conan-center https://center.conan.io True extra\n",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRemotes(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseRemotes() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				if got != nil {
					t.Errorf("failed parse should return nil, got %v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRemotes() = %v, want %v", got, tt.want)
			}
		})
	}
}
