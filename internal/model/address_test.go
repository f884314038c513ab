package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/aryankumar/panosctl/internal/util"
)

func TestAddressValidate(t *testing.T) {
	tests := []struct {
		name    string
		addr    Address
		wantErr string
	}{
		{
			name: "valid netmask",
			addr: Address{Name: "web-1", IPNetmask: "10.0.0.10/32"},
		},
		{
			name: "valid bare IP",
			addr: Address{Name: "web-1", IPNetmask: "10.0.0.10"},
		},
		{
			name: "valid IPv6 prefix",
			addr: Address{Name: "v6-net", IPNetmask: "2001:db8::/64"},
		},
		{
			name: "valid fqdn",
			addr: Address{Name: "api", FQDN: "api.example.com"},
		},
		{
			name: "valid range",
			addr: Address{Name: "pool", IPRange: "10.0.1.100-10.0.1.200"},
		},
		{
			name:    "empty name",
			addr:    Address{IPNetmask: "10.0.0.1/32"},
			wantErr: "must not be empty",
		},
		{
			name:    "name with single quote",
			addr:    Address{Name: "it's-bad", IPNetmask: "10.0.0.1/32"},
			wantErr: "quote characters",
		},
		{
			name:    "name with double quote",
			addr:    Address{Name: `web-"1"`, IPNetmask: "10.0.0.1/32"},
			wantErr: "quote characters",
		},
		{
			name:    "name too long",
			addr:    Address{Name: strings.Repeat("x", 64), IPNetmask: "10.0.0.1/32"},
			wantErr: "exceeds 63 characters",
		},
		{
			name:    "no value field",
			addr:    Address{Name: "empty"},
			wantErr: "one of ip_netmask, fqdn or ip_range",
		},
		{
			name:    "two value fields",
			addr:    Address{Name: "both", IPNetmask: "10.0.0.1/32", FQDN: "a.example.com"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "malformed netmask",
			addr:    Address{Name: "bad", IPNetmask: "10.0.0.300/32"},
			wantErr: "not a valid IP address or network",
		},
		{
			name:    "range without separator",
			addr:    Address{Name: "bad", IPRange: "10.0.0.1"},
			wantErr: "must be start-end",
		},
		{
			name:    "range with bad end",
			addr:    Address{Name: "bad", IPRange: "10.0.0.1-nope"},
			wantErr: "bad end address",
		},
		{
			name:    "range end precedes start",
			addr:    Address{Name: "bad", IPRange: "10.0.1.200-10.0.1.100"},
			wantErr: "end precedes start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.addr.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddressValidateReturnsValidationError(t *testing.T) {
	err := Address{Name: "bad", IPNetmask: "10.0.0.300/32"}.Validate()

	var verr *util.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "ip_netmask" {
		t.Errorf("field = %q, want ip_netmask", verr.Field)
	}
}

func TestAddressTypeAndValue(t *testing.T) {
	tests := []struct {
		name      string
		addr      Address
		wantType  string
		wantValue string
	}{
		{"netmask", Address{IPNetmask: "10.0.0.1/32"}, TypeIPNetmask, "10.0.0.1/32"},
		{"fqdn", Address{FQDN: "api.example.com"}, TypeFQDN, "api.example.com"},
		{"range", Address{IPRange: "10.0.0.1-10.0.0.9"}, TypeIPRange, "10.0.0.1-10.0.0.9"},
		{"empty", Address{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Type(); got != tt.wantType {
				t.Errorf("Type() = %q, want %q", got, tt.wantType)
			}
			if got := tt.addr.Value(); got != tt.wantValue {
				t.Errorf("Value() = %q, want %q", got, tt.wantValue)
			}
		})
	}
}
