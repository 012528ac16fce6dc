package services

import (
	"reflect"
	"testing"
	"time"

	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

// The frozen test clock pins "today" to September 11, 2025.
var (
	testToday     = time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	testYesterday = testToday.AddDate(0, 0, -1)
	testTomorrow  = testToday.AddDate(0, 0, 1)
)

func floatPtr(f float64) *float64 {
	return &f
}

func testSnapshot() *internal_types.CatalogSnapshot {
	return &internal_types.CatalogSnapshot{
		Activities: []internal_types.Activity{
			{
				Id:        "a1",
				EventName: "Beach Cleanup",
				Category:  "Environment",
				Location:  internal_types.ActivityLocation{Address: "Mumbai"},
				NgoId:     "ngo-1",
				EventDay:  testTomorrow,
			},
			{
				Id:        "a2",
				EventName: "Food Drive",
				Category:  "Hunger",
				Location:  internal_types.ActivityLocation{Address: "Pune"},
				NgoId:     "ngo-2",
				EventDay:  testYesterday,
			},
			{
				Id:        "a3",
				EventName: "Blood Donation Camp",
				Category:  "Health",
				Location:  internal_types.ActivityLocation{Address: "Mumbai"},
				NgoId:     "ngo-1",
				EventDay:  testToday,
			},
			{
				Id:        "a4",
				EventName: "Tree Plantation",
				Category:  "Environment",
				Location:  internal_types.ActivityLocation{Address: "Delhi"},
				NgoId:     "ngo-3",
				NgoRating: 3.5,
				EventDay:  testTomorrow,
			},
		},
		Organizations: map[string]internal_types.Organization{
			"ngo-1": {Id: "ngo-1", NgoName: "Ocean Guardians", Rating: floatPtr(4.5)},
			"ngo-2": {Id: "ngo-2", NgoName: "Helping Hands", Rating: floatPtr(2.0)},
			"ngo-3": {Id: "ngo-3", NgoName: "Unknown NGO"},
		},
	}
}

func resultIds(activities []internal_types.Activity) []string {
	ids := make([]string, 0, len(activities))
	for _, activity := range activities {
		ids = append(ids, activity.Id)
	}
	return ids
}

func TestApplyFiltersDateWindows(t *testing.T) {
	snapshot := testSnapshot()

	tests := []struct {
		name        string
		criteria    internal_types.FilterCriteria
		expectedIds []string
	}{
		{
			name:        "upcoming includes today and later",
			criteria:    internal_types.FilterCriteria{DateWindow: internal_types.DateWindowUpcoming},
			expectedIds: []string{"a1", "a3", "a4"},
		},
		{
			name:        "ongoing matches only today",
			criteria:    internal_types.FilterCriteria{DateWindow: internal_types.DateWindowOngoing},
			expectedIds: []string{"a3"},
		},
		{
			name:        "past matches strictly earlier days",
			criteria:    internal_types.FilterCriteria{DateWindow: internal_types.DateWindowPast},
			expectedIds: []string{"a2"},
		},
		{
			name:        "no window passes everything through",
			criteria:    internal_types.FilterCriteria{},
			expectedIds: []string{"a1", "a2", "a3", "a4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ApplyFilters(snapshot, tt.criteria)
			if !reflect.DeepEqual(resultIds(results), tt.expectedIds) {
				t.Errorf("expected ids %v, got %v", tt.expectedIds, resultIds(results))
			}
		})
	}
}

func TestApplyFiltersUnparsableDatesExcludedFromDateWindows(t *testing.T) {
	snapshot := &internal_types.CatalogSnapshot{
		Activities: []internal_types.Activity{
			{Id: "a1", EventName: "Beach Cleanup", EventDay: testTomorrow},
			{Id: "a2", EventName: "Mystery Event"}, // zero EventDay
		},
		Organizations: map[string]internal_types.Organization{},
	}

	upcoming := ApplyFilters(snapshot, internal_types.FilterCriteria{DateWindow: internal_types.DateWindowUpcoming})
	if !reflect.DeepEqual(resultIds(upcoming), []string{"a1"}) {
		t.Errorf("expected only a1 in upcoming, got %v", resultIds(upcoming))
	}

	past := ApplyFilters(snapshot, internal_types.FilterCriteria{DateWindow: internal_types.DateWindowPast})
	if len(past) != 0 {
		t.Errorf("expected no past results, got %v", resultIds(past))
	}
}

func TestApplyFiltersQuery(t *testing.T) {
	snapshot := testSnapshot()

	tests := []struct {
		name        string
		criteria    internal_types.FilterCriteria
		expectedIds []string
	}{
		{
			name:        "matches event name case-insensitively",
			criteria:    internal_types.FilterCriteria{Query: "beach CLEAN"},
			expectedIds: []string{"a1"},
		},
		{
			name:        "matches resolved ngo name",
			criteria:    internal_types.FilterCriteria{Query: "ocean guardians"},
			expectedIds: []string{"a1", "a3"},
		},
		{
			name:        "substring in the middle matches",
			criteria:    internal_types.FilterCriteria{Query: "donation"},
			expectedIds: []string{"a3"},
		},
		{
			name:        "no match yields empty, not error",
			criteria:    internal_types.FilterCriteria{Query: "zzzz"},
			expectedIds: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ApplyFilters(snapshot, tt.criteria)
			if !reflect.DeepEqual(resultIds(results), tt.expectedIds) {
				t.Errorf("expected ids %v, got %v", tt.expectedIds, resultIds(results))
			}
		})
	}
}

func TestApplyFiltersConjunction(t *testing.T) {
	snapshot := testSnapshot()

	criteria := internal_types.FilterCriteria{
		DateWindow: internal_types.DateWindowUpcoming,
		Category:   "environment",
		Location:   "mumbai",
	}

	results := ApplyFilters(snapshot, criteria)
	if !reflect.DeepEqual(resultIds(results), []string{"a1"}) {
		t.Errorf("expected only a1 to satisfy all stages, got %v", resultIds(results))
	}
}

func TestApplyFiltersMinRating(t *testing.T) {
	snapshot := testSnapshot()

	tests := []struct {
		name        string
		minRating   float64
		expectedIds []string
	}{
		{
			name:        "zero threshold disables the stage",
			minRating:   0,
			expectedIds: []string{"a1", "a2", "a3", "a4"},
		},
		{
			name:        "organization rating wins over activity rating",
			minRating:   4.0,
			expectedIds: []string{"a1", "a3"},
		},
		{
			name:        "activity rating used when org has none",
			minRating:   3.0,
			expectedIds: []string{"a1", "a3", "a4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ApplyFilters(snapshot, internal_types.FilterCriteria{MinRating: tt.minRating})
			if !reflect.DeepEqual(resultIds(results), tt.expectedIds) {
				t.Errorf("expected ids %v, got %v", tt.expectedIds, resultIds(results))
			}
		})
	}
}

func TestApplyFiltersIsDeterministicAndPure(t *testing.T) {
	snapshot := testSnapshot()
	criteria := internal_types.FilterCriteria{Query: "a", DateWindow: internal_types.DateWindowUpcoming}

	first := ApplyFilters(snapshot, criteria)
	second := ApplyFilters(snapshot, criteria)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different output: %v vs %v", resultIds(first), resultIds(second))
	}

	// The snapshot itself must be untouched
	if !reflect.DeepEqual(snapshot, testSnapshot()) {
		t.Error("ApplyFilters mutated the snapshot")
	}
}

func TestSuggestActivities(t *testing.T) {
	activities := []internal_types.Activity{
		{Id: "a1", EventName: "Beach Cleanup"},
		{Id: "a2", EventName: "Food Drive"},
		{Id: "a3", EventName: "Beach Volleyball for Charity"},
	}

	tests := []struct {
		name        string
		prefix      string
		expectedIds []string
	}{
		{
			name:        "empty prefix yields nothing",
			prefix:      "",
			expectedIds: []string{},
		},
		{
			name:        "whitespace-only prefix yields nothing",
			prefix:      "   ",
			expectedIds: []string{},
		},
		{
			name:        "case-insensitive substring match",
			prefix:      "bEaCh",
			expectedIds: []string{"a1", "a3"},
		},
		{
			name:        "substring does not need to be a prefix",
			prefix:      "drive",
			expectedIds: []string{"a2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := SuggestActivities(activities, tt.prefix)
			if !reflect.DeepEqual(resultIds(suggestions), tt.expectedIds) {
				t.Errorf("expected ids %v, got %v", tt.expectedIds, resultIds(suggestions))
			}
		})
	}
}

func TestSuggestActivitiesCapsAtLimit(t *testing.T) {
	activities := make([]internal_types.Activity, 0, 8)
	for _, id := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"} {
		activities = append(activities, internal_types.Activity{Id: id, EventName: "Cleanup " + id})
	}

	suggestions := SuggestActivities(activities, "cleanup")
	if len(suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(suggestions))
	}
	// Earliest matches win, in source order
	if !reflect.DeepEqual(resultIds(suggestions), []string{"a1", "a2", "a3", "a4", "a5"}) {
		t.Errorf("expected first five in source order, got %v", resultIds(suggestions))
	}
}
