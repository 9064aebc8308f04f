package roster

// DefaultGeneral returns the built-in names of awards that belong to the
// whole session rather than to one vehicle.
func DefaultGeneral() []string {
	return []string{
		"Mission Maker",
		"Hero of the Sky",
		"Survivor",
		"The Best Squad",
		"Best Squad",
		"Professional",
		"Legend",
		"Invulnerable Fighter",
		"Global Threat",
		"Team Player",
		"Heroic Savior",
		"Tactical Leader",
		"Defender of the Ground",
		"Defender of the Sky",
		"Guardian Angel",
		"Eagle Eye",
		"First Strike",
		"Last Man Standing",
		"Rank Does Not Matter",
		"Honorable Opponent",
		"Trench Warrior",
		"Freedom Fighter",
		"Steadfast",
		"Unsung Hero",
		"Base Defender",
		"On the Front Line",
	}
}
