package helpers

const ActivitiesTablePrefix = "Activities"
const OrganizationsTablePrefix = "Organizations"
const ParticipantsTablePrefix = "Participants"
const RecentSearchesTablePrefix = "RecentSearches"

const ACTIVITY_ID_KEY = "activity_id"
const NGO_ID_KEY = "ngo_id"
const USER_ID_KEY = "user_id"

// RECENT_SEARCH_LIMIT caps the per-user recent search list; entries beyond
// it are dropped oldest-first.
const RECENT_SEARCH_LIMIT = 5

// SUGGESTION_LIMIT caps autosuggest results regardless of match count.
const SUGGESTION_LIMIT = 5

const RECENT_SEARCH_KEY_PREFIX = "recentSearches:"

// UNKNOWN_NGO_NAME is the placeholder display name when an activity
// references an organization that cannot be resolved.
const UNKNOWN_NGO_NAME = "Unknown NGO"
