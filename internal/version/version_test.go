package version

import "testing"

// withBuildInfo подменяет значения, которые обычно приходят из -ldflags.
func withBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()
	prevVersion, prevCommit, prevDate := version, commit, date
	version, commit, date = v, c, d
	t.Cleanup(func() {
		version, commit, date = prevVersion, prevCommit, prevDate
	})
}

func TestDefaults(t *testing.T) {
	if GetVersion() != "dev" {
		t.Errorf("expected dev version by default, got %q", GetVersion())
	}
	if ClientID() != "pizzeria-dev" {
		t.Errorf("expected pizzeria-dev client id, got %q", ClientID())
	}
}

func TestBuildInfo(t *testing.T) {
	tests := []struct {
		name         string
		version      string
		commit       string
		date         string
		wantString   string
		wantClientID string
	}{
		{
			name:         "release build",
			version:      "v1.2.0",
			commit:       "abc123",
			date:         "2024-05-01",
			wantString:   "version=v1.2.0 commit=abc123 date=2024-05-01",
			wantClientID: "pizzeria-v1.2.0",
		},
		{
			name:         "local build",
			version:      "dev",
			commit:       "unknown",
			date:         "unknown",
			wantString:   "version=dev commit=unknown date=unknown",
			wantClientID: "pizzeria-dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit, tt.date)

			if got := GetVersion(); got != tt.version {
				t.Errorf("GetVersion() = %q, want %q", got, tt.version)
			}
			if got := String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := ClientID(); got != tt.wantClientID {
				t.Errorf("ClientID() = %q, want %q", got, tt.wantClientID)
			}
		})
	}
}
