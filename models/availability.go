package models

// DayAvailability records one participant's willingness for one
// calendar day. Hosting implies Available; writers clear Hosting
// whenever Available is unset.
type DayAvailability struct {
	Available bool `json:"available"`
	Hosting   bool `json:"hosting"`
}

// ParticipantAvailability maps an ISO date (YYYY-MM-DD) to that day's
// entry. Absent dates mean not available, not hosting.
type ParticipantAvailability map[string]DayAvailability

// AvailabilityTable maps participant id to their availability. Sparse.
type AvailabilityTable map[string]ParticipantAvailability
