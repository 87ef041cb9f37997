package gcalendar_test

import (
	"context"
	"os"
	"testing"

	"synctracker/internal/model"
	"synctracker/pkg/gcalendar"
)

func TestNewClientFromCredentialsJSON(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken credentials rejected", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Error("expected decoding failure")
		}
	})

	t.Run("installed app config with token.json", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), "primary")
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app config without token.json", func(t *testing.T) {
		os.Remove("token.json")
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), "primary")
		if err == nil {
			t.Error("expected missing token.json error")
		}
	})
}

func TestColorID(t *testing.T) {
	tests := []struct {
		category model.TaskCategory
		want     string
	}{
		{model.CategoryCreative, "5"},
		{model.CategoryAnalytical, "9"},
		{model.CategoryPhysical, "11"},
		{model.CategoryReflection, "1"},
		{model.TaskCategory("unknown"), "1"},
	}

	for _, tt := range tests {
		if got := gcalendar.ColorID(tt.category); got != tt.want {
			t.Errorf("ColorID(%s) = %s, want %s", tt.category, got, tt.want)
		}
	}
}
