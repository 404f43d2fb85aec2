package ghost

import "fmt"

// BulletType identifies the weapon that fired a bullet
type BulletType int

const (
	BulletSwipe BulletType = iota
	BulletSingleShot
	BulletScatter
	BulletRocket
	BulletMine
)

// BulletTypes lists every bullet type in code order
var BulletTypes = []BulletType{BulletSwipe, BulletSingleShot, BulletScatter, BulletRocket, BulletMine}

// Valid reports whether b is a known bullet type
func (b BulletType) Valid() bool {
	return b >= BulletSwipe && b <= BulletMine
}

// String returns the string representation of the bullet type
func (b BulletType) String() string {
	switch b {
	case BulletSwipe:
		return "Swipe"
	case BulletSingleShot:
		return "SingleShot"
	case BulletScatter:
		return "Scatter"
	case BulletRocket:
		return "Rocket"
	case BulletMine:
		return "Mine"
	default:
		return "Unknown"
	}
}

// DiscardAbility is a card discard ability. The value is its step code.
type DiscardAbility int

const (
	DiscardJump        DiscardAbility = 10
	DiscardFlap        DiscardAbility = 15
	DiscardBomb        DiscardAbility = 20
	DiscardFreeze      DiscardAbility = 30
	DiscardDash        DiscardAbility = 40
	DiscardStomp       DiscardAbility = 50
	DiscardTelefrag    DiscardAbility = 60
	DiscardKickback    DiscardAbility = 70
	DiscardStun        DiscardAbility = 80
	DiscardConsumable  DiscardAbility = 90
	DiscardShieldBash  DiscardAbility = 100
	DiscardRocket      DiscardAbility = 110
	DiscardResurrect   DiscardAbility = 120
	DiscardPoisonBoost DiscardAbility = 130
	DiscardZipLine     DiscardAbility = 140
	DiscardMine        DiscardAbility = 150
	DiscardRapture     DiscardAbility = 160
	DiscardMiracle     DiscardAbility = 170
	DiscardBackfire    DiscardAbility = 180
	DiscardFireball    DiscardAbility = 190
)

var discardNames = map[DiscardAbility]string{
	DiscardJump:        "Jump",
	DiscardFlap:        "Flap",
	DiscardBomb:        "Bomb",
	DiscardFreeze:      "Freeze",
	DiscardDash:        "Dash",
	DiscardStomp:       "Stomp",
	DiscardTelefrag:    "Telefrag",
	DiscardKickback:    "Kickback",
	DiscardStun:        "Stun",
	DiscardConsumable:  "Consumable",
	DiscardShieldBash:  "ShieldBash",
	DiscardRocket:      "Rocket",
	DiscardResurrect:   "Resurrect",
	DiscardPoisonBoost: "PoisonBoost",
	DiscardZipLine:     "ZipLine",
	DiscardMine:        "Mine",
	DiscardRapture:     "Rapture",
	DiscardMiracle:     "Miracle",
	DiscardBackfire:    "Backfire",
	DiscardFireball:    "Fireball",
}

// DiscardAbilities lists every discard ability in code order
var DiscardAbilities = []DiscardAbility{
	DiscardJump, DiscardFlap, DiscardBomb, DiscardFreeze, DiscardDash,
	DiscardStomp, DiscardTelefrag, DiscardKickback, DiscardStun, DiscardConsumable,
	DiscardShieldBash, DiscardRocket, DiscardResurrect, DiscardPoisonBoost, DiscardZipLine,
	DiscardMine, DiscardRapture, DiscardMiracle, DiscardBackfire, DiscardFireball,
}

// DiscardAbilityFromCode maps a step code to its ability
func DiscardAbilityFromCode(code int) (DiscardAbility, bool) {
	d := DiscardAbility(code)
	_, ok := discardNames[d]
	return d, ok
}

// String returns the string representation of the discard ability
func (d DiscardAbility) String() string {
	if name, ok := discardNames[d]; ok {
		return name
	}
	return "Unknown"
}

// Raw event code bases used by the recorder
const (
	CodeJump        = 1
	CodeLand        = 3
	CodeBulletBase  = 10
	CodeBulletMax   = 20
	CodeDiscardBase = 1000
	CodeDiscardMax  = 1190
	CodeBulletHit   = 2000
)

// TriggerEvent is the gameplay event attached to a frame.
//
// The set of implementations is closed: NoEvent, JumpEvent, LandEvent,
// BulletEvent, DiscardEvent and BulletHitEvent. Consumers switch over
// all six.
type TriggerEvent interface {
	fmt.Stringer
	// Code returns the raw code the recorder writes for this event (0 for NoEvent)
	Code() int
	isTriggerEvent()
}

type (
	// NoEvent means nothing happened this tick
	NoEvent struct{}
	// JumpEvent is a regular jump
	JumpEvent struct{}
	// LandEvent is a landing
	LandEvent struct{}
	// BulletEvent is a weapon discharge
	BulletEvent struct{ Type BulletType }
	// DiscardEvent is a card discard ability
	DiscardEvent struct{ Ability DiscardAbility }
	// BulletHitEvent is a bullet impact
	BulletHitEvent struct{}
)

func (NoEvent) isTriggerEvent()        {}
func (JumpEvent) isTriggerEvent()      {}
func (LandEvent) isTriggerEvent()      {}
func (BulletEvent) isTriggerEvent()    {}
func (DiscardEvent) isTriggerEvent()   {}
func (BulletHitEvent) isTriggerEvent() {}

func (NoEvent) Code() int        { return 0 }
func (JumpEvent) Code() int      { return CodeJump }
func (LandEvent) Code() int      { return CodeLand }
func (e BulletEvent) Code() int  { return CodeBulletBase + int(e.Type) }
func (e DiscardEvent) Code() int { return CodeDiscardBase + int(e.Ability) }
func (BulletHitEvent) Code() int { return CodeBulletHit }

func (NoEvent) String() string        { return "None" }
func (JumpEvent) String() string      { return "Jump" }
func (LandEvent) String() string      { return "Land" }
func (e BulletEvent) String() string  { return "Bullet(" + e.Type.String() + ")" }
func (e DiscardEvent) String() string { return "Discard(" + e.Ability.String() + ")" }
func (BulletHitEvent) String() string { return "BulletHit" }
