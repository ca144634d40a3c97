// Package input holds the per-fighter input buffer and the command motion
// table it is matched against. It has no dependencies on donburi or resolv.
package input

import "regexp"

// CommandType is a multi-frame motion recognized from the motion history.
type CommandType int

const (
	CommandNone CommandType = iota
	CommandDash
	CommandBackDash
	CommandFireball
	CommandReverseFireball
	CommandDragonPunch
	CommandReverseDragonPunch
	CommandHalfCircleBack
	CommandHalfCircleForward
)

var commandNames = map[CommandType]string{
	CommandNone:               "NONE",
	CommandDash:               "DASH",
	CommandBackDash:           "BACK_DASH",
	CommandFireball:           "FIREBALL",
	CommandReverseFireball:    "REVERSE_FIREBALL",
	CommandDragonPunch:        "DRAGON_PUNCH",
	CommandReverseDragonPunch: "REVERSE_DRAGON_PUNCH",
	CommandHalfCircleBack:     "HALF_CIRCLE_BACK",
	CommandHalfCircleForward:  "HALF_CIRCLE_FORWARD",
}

func (c CommandType) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Notation is the numpad spelling used to name special attacks, e.g. the
// fireball motion is "236" so "236A" is a fireball on A. Dashes have none.
func (c CommandType) Notation() string {
	switch c {
	case CommandFireball:
		return "236"
	case CommandReverseFireball:
		return "214"
	case CommandDragonPunch:
		return "623"
	case CommandReverseDragonPunch:
		return "421"
	case CommandHalfCircleBack:
		return "63214"
	case CommandHalfCircleForward:
		return "41236"
	}
	return ""
}

// IsDash is true for the two ground/air dash commands.
func (c CommandType) IsDash() bool {
	return c == CommandDash || c == CommandBackDash
}

// Rule maps a motion pattern to a command. Higher priority wins.
type Rule struct {
	Priority int
	Pattern  *regexp.Regexp
	Command  CommandType
}

// Rules is the fixed command table, scanned in order on every match.
// Patterns may match anywhere in the history; Consume's lockout keeps a
// motion that is still buffered from firing twice in a row.
var Rules = []Rule{
	{1, regexp.MustCompile(`([^6]+[69]{1,5}[^6]{0,9}5[^5]{0,4}6)`), CommandDash},
	{1, regexp.MustCompile(`([^4]+[47]{1,5}[^4]{0,9}5[^5]{0,4}4)`), CommandBackDash},
	{2, regexp.MustCompile(`(2[^2]{0,4}3[^3]{0,4}6)`), CommandFireball},
	{2, regexp.MustCompile(`(2[^2]{0,4}1[^1]{0,4}4)`), CommandReverseFireball},
	{3, regexp.MustCompile(`(6[^6]{0,4}2[^2]{0,4}3)`), CommandDragonPunch},
	{3, regexp.MustCompile(`(4[^4]{0,4}2[^2]{0,4}1)`), CommandReverseDragonPunch},
	{4, regexp.MustCompile(`(6[^6]{0,6}2[^2]{0,6}4)`), CommandHalfCircleBack},
	{4, regexp.MustCompile(`(4[^4]{0,6}2[^2]{0,6}6)`), CommandHalfCircleForward},
}

// MatchCommand scans the rule table against a flattened motion history.
// A rule only counts if its priority beats both the incoming priority and
// any match already found in this pass, so equal-priority ties go to the
// earlier rule.
func MatchCommand(history string, priority int) (CommandType, int, bool) {
	found := CommandNone
	best := priority
	for _, rule := range Rules {
		if rule.Priority <= best {
			continue
		}
		if rule.Pattern.MatchString(history) {
			found = rule.Command
			best = rule.Priority
		}
	}
	return found, best, found != CommandNone
}
