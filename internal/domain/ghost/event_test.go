package ghost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletType_String(t *testing.T) {
	tests := []struct {
		bt       BulletType
		expected string
	}{
		{BulletSwipe, "Swipe"},
		{BulletSingleShot, "SingleShot"},
		{BulletScatter, "Scatter"},
		{BulletRocket, "Rocket"},
		{BulletMine, "Mine"},
		{BulletType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.bt.String())
		})
	}
}

func TestBulletTypeConstants(t *testing.T) {
	// Codes are ordinal, the recorder writes 10 + type
	assert.Equal(t, BulletType(0), BulletSwipe)
	assert.Equal(t, BulletType(4), BulletMine)
	assert.Len(t, BulletTypes, 5)
	for _, bt := range BulletTypes {
		assert.True(t, bt.Valid())
	}
	assert.False(t, BulletType(5).Valid())
	assert.False(t, BulletType(-1).Valid())
}

func TestDiscardAbilityFromCode(t *testing.T) {
	d, ok := DiscardAbilityFromCode(10)
	assert.True(t, ok)
	assert.Equal(t, DiscardJump, d)

	d, ok = DiscardAbilityFromCode(15)
	assert.True(t, ok)
	assert.Equal(t, DiscardFlap, d)

	d, ok = DiscardAbilityFromCode(190)
	assert.True(t, ok)
	assert.Equal(t, DiscardFireball, d)

	for _, code := range []int{0, 9, 11, 25, 195, 200} {
		_, ok := DiscardAbilityFromCode(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestDiscardAbilities_AllNamed(t *testing.T) {
	assert.Len(t, DiscardAbilities, len(discardNames))
	for _, d := range DiscardAbilities {
		assert.NotEqual(t, "Unknown", d.String(), "ability %d", int(d))
	}
	assert.Equal(t, "Unknown", DiscardAbility(9).String())
}

func TestTriggerEvent_CodeAndString(t *testing.T) {
	tests := []struct {
		event TriggerEvent
		code  int
		name  string
	}{
		{NoEvent{}, 0, "None"},
		{JumpEvent{}, 1, "Jump"},
		{LandEvent{}, 3, "Land"},
		{BulletEvent{Type: BulletScatter}, 12, "Bullet(Scatter)"},
		{DiscardEvent{Ability: DiscardZipLine}, 1140, "Discard(ZipLine)"},
		{BulletHitEvent{}, 2000, "BulletHit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.event.Code())
			assert.Equal(t, tt.name, tt.event.String())
		})
	}
}
