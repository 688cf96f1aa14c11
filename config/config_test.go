// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 Steadybit GmbH

package config

import (
	"github.com/steadybit/docker-container/pkg/dockercontainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_parseArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		config     Specification
		wantErr    bool
		wantConfig Specification
	}{
		{
			name: "Should not touch the existing config if no flags are set",
			config: Specification{
				Image: "nginx:1.25",
				Env:   map[string]string{"a": "b"},
			},
			wantConfig: Specification{
				Image: "nginx:1.25",
				Env:   map[string]string{"a": "b"},
			},
		},
		{
			name: "Should override and add to the existing config",
			args: []string{
				"-image=redis:7", "-name=cache", "-skipPull",
				"-port=6379:16379",
				"-env=c=d=e", "-env", "f=",
				"-link=db:database",
				"-volume=/hostDir:/guestDir",
			},
			config: Specification{
				Image: "nginx:1.25",
				Env:   map[string]string{"a": "b"},
			},
			wantConfig: Specification{
				Image:    "redis:7",
				Name:     "cache",
				SkipPull: true,
				Ports:    []string{"6379:16379"},
				Env:      map[string]string{"a": "b", "c": "d=e", "f": ""},
				Links:    map[string]string{"db": "database"},
				Volumes:  map[string]string{"/guestDir": "/hostDir"},
			},
		},
		{
			name:       "Should reject malformed links",
			args:       []string{"-link=db"},
			wantErr:    true,
			wantConfig: Specification{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := parseArgs(&tt.config, tt.args); (err != nil) != tt.wantErr {
				t.Errorf("parseArgs() error = %v, wantErr %v", err, tt.wantErr)
			} else if !tt.wantErr {
				assert.Equal(t, tt.wantConfig, tt.config)
			}
		})
	}
}

func Test_parsePorts(t *testing.T) {
	tests := []struct {
		name    string
		ports   []string
		want    []dockercontainer.PortMapping
		wantErr bool
	}{
		{name: "none"},
		{name: "single", ports: []string{"1000:2000"}, want: []dockercontainer.PortMapping{{From: 1000, To: 2000}}},
		{name: "multiple", ports: []string{"80:8080", " 443:8443 "}, want: []dockercontainer.PortMapping{{From: 80, To: 8080}, {From: 443, To: 8443}}},
		{name: "missing separator", ports: []string{"80"}, wantErr: true},
		{name: "out of range", ports: []string{"80:70000"}, wantErr: true},
		{name: "zero", ports: []string{"0:80"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePorts(tt.ports)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_validate(t *testing.T) {
	cfg := Specification{Image: "a/b"}
	require.NoError(t, validate(&cfg))
	assert.Regexp(t, "^container-[0-9a-f]{8}$", cfg.Name)

	cfg = Specification{Image: "a/b", Name: "a"}
	require.NoError(t, validate(&cfg))
	assert.Equal(t, "a", cfg.Name)

	assert.Error(t, validate(&Specification{}))
	assert.Error(t, validate(&Specification{Image: "INVALID::image"}))
	assert.Error(t, validate(&Specification{Image: "a/b", Ports: []string{"x:y"}}))
}

func Test_RunOptions(t *testing.T) {
	cfg := Specification{
		Image:   "a/b",
		Ports:   []string{"1000:2000"},
		Env:     map[string]string{"a": "b"},
		Links:   map[string]string{"containerName": "nameInTarget"},
		Volumes: map[string]string{"/guestDir": "/hostDir"},
	}

	assert.Equal(t, dockercontainer.RunOptions{
		Ports:   []dockercontainer.PortMapping{{From: 1000, To: 2000}},
		Env:     map[string]string{"a": "b"},
		Links:   map[string]string{"containerName": "nameInTarget"},
		Volumes: map[string]string{"/guestDir": "/hostDir"},
	}, cfg.RunOptions())
}
