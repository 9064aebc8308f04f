// Package sections locates the logical regions of a battle report and turns
// their lines into typed entries.
package sections

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/lionshare/internal/model"
)

// ErrStructure reports that a required region or numeric field of the report
// could not be matched. Results accompanying it must not be trusted.
var ErrStructure = errors.New("report structure not recognised")

const (
	headingTimePlayed = "Time Played"
	headingActivity   = "Activity Time"
	headingAwards     = "Awards"
)

// Normalize folds line endings and converts the text to NFC so that names
// compare equal across sections.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return norm.NFC.String(text)
}

// Extract parses a battle report into its sections.
func Extract(text string) (*model.Sections, error) {
	text = Normalize(text)
	lines := strings.Split(text, "\n")

	first := strings.Fields(lines[0])
	if len(first) == 0 {
		return nil, fmt.Errorf("sections: %w: missing outcome line", ErrStructure)
	}

	s := &model.Sections{
		Victory:        first[0] == "Victory",
		Booster:        boosterRe.MatchString(text),
		PremiumFormula: premiumRe.MatchString(text),
	}

	played := findHeading(lines, headingTimePlayed)
	if played < 0 {
		return nil, fmt.Errorf("sections: %w: %q section not found", ErrStructure, headingTimePlayed)
	}
	for _, line := range block(lines, played) {
		if name, ok := parsePlayed(line); ok {
			s.TimePlayed = append(s.TimePlayed, name)
		}
	}
	if len(s.TimePlayed) == 0 {
		return nil, fmt.Errorf("sections: %w: %q section has no vehicles", ErrStructure, headingTimePlayed)
	}

	activity := findHeading(lines, headingActivity)
	if activity < 0 {
		return nil, fmt.Errorf("sections: %w: %q section not found", ErrStructure, headingActivity)
	}
	for _, line := range block(lines, activity) {
		e, ok, err := parseActivity(line)
		if err != nil {
			return nil, fmt.Errorf("sections: %w", err)
		}
		if ok {
			s.ActivityTime = append(s.ActivityTime, e)
		}
	}

	mainEnd := len(lines)
	if awards := findHeading(lines, headingAwards); awards >= 0 {
		mainEnd = awards
		s.HasAwards = true
		entries, err := timedLines(block(lines, awards))
		if err != nil {
			return nil, err
		}
		s.Awards = entries
	}
	entries, err := timedLines(lines[:mainEnd])
	if err != nil {
		return nil, err
	}
	s.Main = entries

	for _, m := range otherAwardsRe.FindAllStringSubmatch(text, -1) {
		v, err := parseAmount(m[1], strings.TrimSpace(m[0]))
		if err != nil {
			return nil, fmt.Errorf("sections: %w", err)
		}
		s.OtherAwards += v
	}
	if s.DeclaredBonus, err = findAmount(rewardRe, text, "Reward for"); err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}
	if s.DeclaredEarned, err = findAmount(earnedRe, text, "Earned"); err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}
	return s, nil
}

// findHeading returns the index of the first unindented line starting with
// heading, or -1.
func findHeading(lines []string, heading string) int {
	for i, line := range lines {
		if strings.HasPrefix(line, heading) {
			return i
		}
	}
	return -1
}

// block returns the lines after the heading at index h up to the first blank
// line.
func block(lines []string, h int) []string {
	end := h + 1
	for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		end++
	}
	return lines[h+1 : end]
}

func timedLines(lines []string) ([]model.TimedEntry, error) {
	var out []model.TimedEntry
	for _, line := range lines {
		e, ok, err := parseTimed(line)
		if err != nil {
			return nil, fmt.Errorf("sections: %w", err)
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}
