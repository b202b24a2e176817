package domain

// Branch represents an office location with its own parking dashboard
type Branch struct {
	Code string
	Name string
	City string
}

// DefaultBranches branches offered on the landing page
func DefaultBranches() []Branch {
	return []Branch{
		{Code: "trichy", Name: "VDart Gcc, Trichy", City: "Trichy"},
		{Code: "bangalore", Name: "VDart Digital, Bangalore", City: "Bangalore"},
		{Code: "chennai", Name: "VDart Digital, Chennai", City: "Chennai"},
		{Code: "atlanta", Name: "VDart, US Atlanta", City: "Atlanta"},
	}
}
