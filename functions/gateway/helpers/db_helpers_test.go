package helpers

import (
	"os"
	"testing"
)

func TestIsDeployed(t *testing.T) {
	tests := []struct {
		name     string
		sstStage string
		expected bool
	}{
		{"prod stage", "prod", true},
		{"feature branch", "feature-new-search", true},
		{"local dev", "", false},
		{"other stage", "staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := os.Getenv("SST_STAGE")
			defer os.Setenv("SST_STAGE", original)

			os.Setenv("SST_STAGE", tt.sstStage)
			if got := IsDeployed(); got != tt.expected {
				t.Errorf("expected %v for stage %q, got %v", tt.expected, tt.sstStage, got)
			}
		})
	}
}

func TestGetDbTableName(t *testing.T) {
	original := os.Getenv("SST_STAGE")
	defer os.Setenv("SST_STAGE", original)

	os.Setenv("SST_STAGE", "")
	if got := GetDbTableName(ActivitiesTablePrefix); got != ActivitiesTablePrefix {
		t.Errorf("expected local table name %q, got %q", ActivitiesTablePrefix, got)
	}

	os.Setenv("SST_STAGE", "prod")
	os.Setenv("SST_Table_tableName_"+ActivitiesTablePrefix, "Activities-prod-xyz")
	defer os.Unsetenv("SST_Table_tableName_" + ActivitiesTablePrefix)

	if got := GetDbTableName(ActivitiesTablePrefix); got != "Activities-prod-xyz" {
		t.Errorf("expected deployed table name, got %q", got)
	}
}
