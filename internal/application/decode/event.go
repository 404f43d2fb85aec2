package decode

import (
	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// classifyEvent maps a raw trigger event code to its event
func classifyEvent(code int64) (ghost.TriggerEvent, error) {
	switch {
	case code == ghost.CodeJump:
		return ghost.JumpEvent{}, nil
	case code == ghost.CodeLand:
		return ghost.LandEvent{}, nil
	case code == ghost.CodeBulletHit:
		return ghost.BulletHitEvent{}, nil
	case code >= ghost.CodeBulletBase && code <= ghost.CodeBulletMax:
		bt := ghost.BulletType(code - ghost.CodeBulletBase)
		if !bt.Valid() {
			return nil, ErrBulletType
		}
		return ghost.BulletEvent{Type: bt}, nil
	case code >= ghost.CodeDiscardBase && code <= ghost.CodeDiscardMax:
		ability, ok := ghost.DiscardAbilityFromCode(int(code - ghost.CodeDiscardBase))
		if !ok {
			return nil, ErrDiscardAbility
		}
		return ghost.DiscardEvent{Ability: ability}, nil
	default:
		return nil, ErrEventCode
	}
}
