package action

// Transition is the animation signal emitted when the state kind changes.
type Transition int

const (
	TransitionNone Transition = iota
	RiseToFall
	FallToIdle
	CrouchToIdle
	WalkToIdle
	BackwalkToIdle
	DashToIdle
	BackDashToIdle
	AirdashToFall
	AirbackdashToFall
	ToIdle
	ToRise
	ToWalk
	ToBackwalk
	ToDash
	ToBackdash
	ToAirdash
	ToAirBackdash
	ToCrouch
	ToAttack
	ToFall
)

var transitionNames = map[Transition]string{
	TransitionNone:    "None",
	RiseToFall:        "RiseToFall",
	FallToIdle:        "FallToIdle",
	CrouchToIdle:      "CrouchToIdle",
	WalkToIdle:        "WalkToIdle",
	BackwalkToIdle:    "BackwalkToIdle",
	DashToIdle:        "DashToIdle",
	BackDashToIdle:    "BackDashToIdle",
	AirdashToFall:     "AirdashToFall",
	AirbackdashToFall: "AirbackdashToFall",
	ToIdle:            "ToIdle",
	ToRise:            "ToRise",
	ToWalk:            "ToWalk",
	ToBackwalk:        "ToBackwalk",
	ToDash:            "ToDash",
	ToBackdash:        "ToBackdash",
	ToAirdash:         "ToAirdash",
	ToAirBackdash:     "ToAirBackdash",
	ToCrouch:          "ToCrouch",
	ToAttack:          "ToAttack",
	ToFall:            "ToFall",
}

func (t Transition) String() string {
	if name, ok := transitionNames[t]; ok {
		return name
	}
	return "Unknown"
}

// transitionClips maps a signal to the animation clip it plays.
// ToAttack plays the clip named after the attack.
var transitionClips = map[Transition]string{
	RiseToFall:        "rise_to_fall",
	FallToIdle:        "fall_to_idle",
	CrouchToIdle:      "crouch_to_idle",
	WalkToIdle:        "walk_to_idle",
	BackwalkToIdle:    "backwalk_to_idle",
	DashToIdle:        "dash_to_idle",
	BackDashToIdle:    "backdash_to_idle",
	AirdashToFall:     "airdash_to_fall",
	AirbackdashToFall: "air_backdash_to_fall",
	ToIdle:            "idle",
	ToRise:            "rise",
	ToWalk:            "walk",
	ToBackwalk:        "backwalk",
	ToDash:            "dash",
	ToBackdash:        "backdash",
	ToAirdash:         "airdash",
	ToAirBackdash:     "air_backdash",
	ToCrouch:          "crouch",
	ToFall:            "fall",
}

// Clip returns the sheet-local animation name for a signal into next.
func Clip(t Transition, next State) string {
	if t == ToAttack && next.Attack != nil {
		return next.Attack.Name
	}
	return transitionClips[t]
}

type transitionRule struct {
	from []Kind // nil matches any kind
	to   Kind
	t    Transition
}

// transitionTable is scanned in order; the first matching rule wins.
var transitionTable = []transitionRule{
	{[]Kind{Rising}, Falling, RiseToFall},
	{[]Kind{Falling, Rising}, Idle, FallToIdle},
	{[]Kind{Crouching}, Idle, CrouchToIdle},
	{[]Kind{Walking}, Idle, WalkToIdle},
	{[]Kind{BackWalking}, Idle, BackwalkToIdle},
	{[]Kind{Dashing}, Idle, DashToIdle},
	{[]Kind{BackDashing}, Idle, BackDashToIdle},
	{[]Kind{AirDashing}, Falling, AirdashToFall},
	{[]Kind{AirBackDashing}, Falling, AirbackdashToFall},
	{nil, Idle, ToIdle},
	{nil, Jumpsquat, ToRise},
	{nil, AirJumpsquat, ToRise},
	{nil, Walking, ToWalk},
	{nil, BackWalking, ToBackwalk},
	{nil, Dashing, ToDash},
	{nil, BackDashing, ToBackdash},
	{nil, AirDashing, ToAirdash},
	{nil, AirBackDashing, ToAirBackdash},
	{nil, Crouching, ToCrouch},
	{nil, Attacking, ToAttack},
	{nil, Falling, ToFall},
}

// TransitionFor looks up the signal for old -> next. Same-kind updates
// and unlisted pairs (e.g. into Rising, which the jump already announced)
// produce TransitionNone.
func TransitionFor(old, next State) Transition {
	if old.Same(next) {
		return TransitionNone
	}
	for _, rule := range transitionTable {
		if rule.to != next.Kind {
			continue
		}
		if rule.from == nil || containsKind(rule.from, old.Kind) {
			return rule.t
		}
	}
	return TransitionNone
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
