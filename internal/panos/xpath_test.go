package panos

import (
	"strings"
	"testing"
)

func TestIsShared(t *testing.T) {
	tests := []struct {
		deviceGroup string
		want        bool
	}{
		{"", true},
		{"shared", true},
		{"Shared", true},
		{"-shared", true},
		{"Branch-Offices", false},
		{"shared-dg", false},
	}

	for _, tt := range tests {
		t.Run("dg_"+tt.deviceGroup, func(t *testing.T) {
			if got := IsShared(tt.deviceGroup); got != tt.want {
				t.Errorf("IsShared(%q) = %v, want %v", tt.deviceGroup, got, tt.want)
			}
		})
	}
}

func TestAddressXPath(t *testing.T) {
	tests := []struct {
		name        string
		deviceGroup string
		objectName  string
		want        string
	}{
		{
			name:        "shared container",
			deviceGroup: "",
			objectName:  "",
			want:        "/config/shared/address",
		},
		{
			name:        "shared entry",
			deviceGroup: "shared",
			objectName:  "web-1",
			want:        "/config/shared/address/entry[@name='web-1']",
		},
		{
			name:        "device group entry",
			deviceGroup: "Branch-Offices",
			objectName:  "web-1",
			want:        "/config/devices/entry[@name='localhost.localdomain']/device-group/entry[@name='Branch-Offices']/address/entry[@name='web-1']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addressXPath(tt.deviceGroup, tt.objectName); got != tt.want {
				t.Errorf("addressXPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddressGroupXPath(t *testing.T) {
	got := addressGroupXPath("DG-1", "web-servers")
	if !strings.Contains(got, "device-group/entry[@name='DG-1']/address-group/entry[@name='web-servers']") {
		t.Errorf("unexpected xpath %q", got)
	}

	shared := addressGroupXPath("", "")
	if shared != "/config/shared/address-group" {
		t.Errorf("unexpected shared container xpath %q", shared)
	}
}
