package conversion

import "bioconvert/internal/seqio/phylip"

// MethodInfo describes a built-in conversion method.
type MethodInfo struct {
	Name string `json:"name"`
	// Tool is the external program the method runs, empty for in-process
	// methods.
	Tool        string `json:"tool,omitempty"`
	Layout      string `json:"layout"`
	Installable bool   `json:"installable"`
	Description string `json:"description"`
}

// KnownMethods lists the built-in methods in registration order.
func KnownMethods() []MethodInfo {
	return []MethodInfo{
		{
			Name:        MethodBiogo,
			Layout:      phylip.Sequential.String(),
			Description: "parse with biogo and write sequential PHYLIP in process",
		},
		{
			Name:        MethodSquizz,
			Tool:        MethodSquizz,
			Layout:      phylip.Interleaved.String(),
			Description: "run squizz -c PHYLIPI",
		},
		{
			Name:        MethodGoalign,
			Tool:        MethodGoalign,
			Layout:      "goalign default",
			Installable: true,
			Description: "run goalign reformat phylip, installing goalign when missing",
		},
	}
}
