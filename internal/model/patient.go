package model

// Unknown is the placeholder rendered for absent summary fields so display
// code never sees an empty value.
const Unknown = "N/A"

// PatientInfo is the flat per-record summary shown alongside the timeline.
type PatientInfo struct {
	Name      string `json:"name"`
	MRN       string `json:"mrn"`
	DOB       string `json:"dob"`
	Age       string `json:"age"`
	Sex       string `json:"gender"`
	Admission string `json:"admission"`
	Diagnosis string `json:"diagnosis"`
}
