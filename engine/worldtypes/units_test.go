package worldtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttackProfiles(t *testing.T) {
	villager := ProfileFor(ClassVillager)
	assert.True(t, villager.Melee)
	assert.Equal(t, 1, villager.Range)

	archer := ProfileFor(ClassArcher)
	assert.False(t, archer.Melee)
	assert.Equal(t, 3, archer.Range)
	assert.Equal(t, 1, archer.MinRange)

	trebuchet := ProfileFor(ClassTrebuchet)
	assert.Equal(t, 6, trebuchet.Range)
	assert.Equal(t, 2, trebuchet.MinRange)
}

func TestSiegeClassification(t *testing.T) {
	assert.True(t, IsSiegeClass(ClassTrebuchet))
	assert.True(t, IsSiegeClass(ClassBatteringRam))
	assert.False(t, IsSiegeClass(ClassArcher))
}

func TestTankAuraRadii(t *testing.T) {
	radius, ok := IsTankAura(ClassManAtArms)
	assert.True(t, ok)
	assert.Equal(t, 1, radius)

	radius, ok = IsTankAura(ClassKnight)
	assert.True(t, ok)
	assert.Equal(t, 2, radius)

	_, ok = IsTankAura(ClassArcher)
	assert.False(t, ok)
}

func TestWaterUnitClassification(t *testing.T) {
	assert.True(t, IsWaterUnit(ClassBoat))
	assert.True(t, IsWaterUnit(ClassTradeCog))
	assert.False(t, IsWaterUnit(ClassVillager))
}

func TestOrientationUnitVectors(t *testing.T) {
	dx, dy := OrientN.Unit()
	assert.Equal(t, 0, dx)
	assert.Equal(t, -1, dy)

	dx, dy = OrientE.Unit()
	assert.Equal(t, 1, dx)
	assert.Equal(t, 0, dy)

	assert.True(t, OrientN.IsCardinal())
	assert.False(t, OrientNE.IsCardinal())
}
