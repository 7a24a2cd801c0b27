package gcode

// Profile defines a post-processor configuration for a CNC controller.
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Startup codes
	StartCode    []string `json:"start_code"`    // Commands at start of file
	SpindleStart string   `json:"spindle_start"` // Spindle on command (e.g., "M3 S%d")
	SpindleStop  string   `json:"spindle_stop"`  // Spindle off command

	// Motion
	RapidMove string `json:"rapid_move"` // G0 or equivalent
	FeedMove  string `json:"feed_move"`  // G1 or equivalent

	// End codes; [SafeZ] is replaced with the configured safe height and
	// [Origin] with the work origin in the profile's number format
	EndCode []string `json:"end_code"`

	// Comment style
	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`

	DecimalPlaces int `json:"decimal_places"`
}

// Profiles lists the built-in controller profiles. Generic is last and is
// the fallback for unknown names.
var Profiles = []Profile{
	{
		Name:          "Grbl",
		Description:   "Standard Grbl configuration (Arduino CNC shields)",
		StartCode:     []string{"G90", "G21", "G17"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X[Origin] Y[Origin]", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
	{
		Name:          "Mach3",
		Description:   "Mach3 CNC control software",
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G28 X[Origin] Y[Origin]", "M30"},
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 4,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC (formerly EMC2)",
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X[Origin] Y[Origin]", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 4,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		StartCode:     []string{"G90", "G21"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X[Origin] Y[Origin]", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
}

// GetProfile returns a profile by name, or the Generic profile if not found.
func GetProfile(name string) Profile {
	for _, p := range Profiles {
		if p.Name == name {
			return p
		}
	}
	return Profiles[len(Profiles)-1]
}

// ProfileNames returns the names of all built-in profiles.
func ProfileNames() []string {
	names := make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = p.Name
	}
	return names
}
