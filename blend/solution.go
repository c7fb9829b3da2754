package blend

// Solution is the file format written after a solve: the outcome plus
// run metadata, with snake_case keys matching the instance format.
// Quantities is present only for an optimal status.
type Solution struct {
	Name       string             `json:"name"`
	Status     string             `json:"status"`
	Objective  float64            `json:"objective"`
	Quantities map[string]float64 `json:"quantities,omitempty"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment,omitempty"`
}

// SysInfo records the basic facts of the machine that produced a Solution.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAMMB    uint64 `json:"ram_mb"`
}
