package sections

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Field separator: a tab or a run of two or more blanks. Single spaces are
// part of vehicle and award names.
const sep = `(?:[ \t]{2,}|\t)`

var (
	// 4:27    Tiger II (H)    M4A3E8    620 + (PA)186 = 806 SL    54 RP
	timedRe = regexp.MustCompile(`^[ \t]*(\d{1,2}):(\d{2})` + sep + `(\S.*?)` + sep + `.*?(\d+) SL`)

	// "    Tiger II (H)        96%    10:21". Only the name is used.
	playedRe = regexp.MustCompile(`^(?: {4,}|\t)(\S.*?)(?:` + sep + `|[ \t]*$)`)

	// "    Tiger II (H)        10:21    412 SL"
	activityRe = regexp.MustCompile(`^(?: {4,}|\t)(\S.*?)` + sep + `.*?(\d+) SL`)

	otherAwardsRe = regexp.MustCompile(`(?m)^[ \t]*Other awards` + sep + `.*?(\d+) SL`)
	rewardRe      = regexp.MustCompile(`(?m)^[ \t]*Reward for .*?(\d+) SL`)
	earnedRe      = regexp.MustCompile(`(?m)^[ \t]*Earned:[ \t]*(\d+) SL`)
	boosterRe     = regexp.MustCompile(`(?m)^Active boosters SL:`)
	premiumRe     = regexp.MustCompile(`\(PA\)\d+(?: \+ \S*?)* = \d+ SL`)
)

// parseTimed matches a timestamp-prefixed line. ok is false when the line does
// not have that shape; err is set when it does but a number is unusable.
func parseTimed(line string) (e model.TimedEntry, ok bool, err error) {
	m := timedRe.FindStringSubmatch(line)
	if m == nil {
		return model.TimedEntry{}, false, nil
	}
	mins, _ := strconv.Atoi(m[1])
	secs, _ := strconv.Atoi(m[2])
	if secs > 59 {
		return model.TimedEntry{}, true, fmt.Errorf("%w: bad timestamp %s:%s in %q", ErrStructure, m[1], m[2], line)
	}
	v, err := parseAmount(m[4], line)
	if err != nil {
		return model.TimedEntry{}, true, err
	}
	return model.TimedEntry{
		Seconds: mins*60 + secs,
		Name:    m[3],
		Value:   v,
		Line:    line,
	}, true, nil
}

func parsePlayed(line string) (string, bool) {
	m := playedRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func parseActivity(line string) (model.Entry, bool, error) {
	m := activityRe.FindStringSubmatch(line)
	if m == nil {
		return model.Entry{}, false, nil
	}
	v, err := parseAmount(m[2], line)
	if err != nil {
		return model.Entry{}, true, err
	}
	return model.Entry{Name: m[1], Value: v}, true, nil
}

func parseAmount(s, line string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad amount %q in %q", ErrStructure, s, line)
	}
	return v, nil
}

// findAmount returns the first capture of re in text.
func findAmount(re *regexp.Regexp, text, what string) (int64, error) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %s line not found", ErrStructure, what)
	}
	return parseAmount(m[1], strings.TrimSpace(m[0]))
}
