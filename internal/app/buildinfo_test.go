package app

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	original := readBuildInfo
	t.Cleanup(func() {
		readBuildInfo = original
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return info, info != nil
	}
}

func TestBuildVersion(t *testing.T) {
	original := Version
	t.Cleanup(func() {
		Version = original
	})

	tests := []struct {
		name string
		in   string
		info *debug.BuildInfo
		want string
	}{
		{name: "defaults to dev", in: "", want: "dev"},
		{name: "trims value", in: " 1.2.3 ", want: "1.2.3"},
		{name: "ldflags win over module version", in: "1.2.3", info: &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, want: "1.2.3"},
		{name: "falls back to module version", in: "dev", info: &debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, want: "v0.9.0"},
		{name: "ignores devel module version", in: "", info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, want: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.info)
			Version = tt.in
			if got := BuildVersion(); got != tt.want {
				t.Fatalf("BuildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDateYMD(t *testing.T) {
	original := BuildDate
	t.Cleanup(func() {
		BuildDate = original
	})

	vcs := &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.time", Value: "2026-03-04T10:00:00Z"}}}

	tests := []struct {
		name string
		in   string
		info *debug.BuildInfo
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "rfc3339 formatted", in: "2026-01-30T14:55:03Z", want: "2026-01-30"},
		{name: "date only", in: "2026-01-30", want: "2026-01-30"},
		{name: "unknown format returns as is", in: "not-a-date", want: "not-a-date"},
		{name: "falls back to vcs time", in: "", info: vcs, want: "2026-03-04"},
		{name: "ldflags win over vcs time", in: "2026-01-30", info: vcs, want: "2026-01-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.info)
			BuildDate = tt.in
			if got := BuildDateYMD(); got != tt.want {
				t.Fatalf("BuildDateYMD() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildVersionWithDate(t *testing.T) {
	originalVersion := Version
	originalBuildDate := BuildDate
	t.Cleanup(func() {
		Version = originalVersion
		BuildDate = originalBuildDate
	})
	stubBuildInfo(t, nil)

	Version = "0.1.2"
	BuildDate = "2026-01-30T14:55:03Z"
	if got := BuildVersionWithDate(); got != "0.1.2 (2026-01-30)" {
		t.Fatalf("BuildVersionWithDate() = %q", got)
	}

	BuildDate = ""
	if got := BuildVersionWithDate(); got != "0.1.2" {
		t.Fatalf("BuildVersionWithDate() without date = %q", got)
	}
}
