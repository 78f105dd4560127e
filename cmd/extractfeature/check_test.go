// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"testing"
)

func TestValidateCheckArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil},
		{name: "change line token", args: []string{"check_change_line"}},
		{name: "unknown token", args: []string{"check_everything"}, wantErr: true},
		{name: "token plus garbage", args: []string{"check_change_line", "extra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCheckArgs(checkCmd, tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), "unknown argument") {
					t.Errorf("err = %v, want unknown argument", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}
