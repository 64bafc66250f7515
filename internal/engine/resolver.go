package engine

import (
	"github.com/arcade-cabinet/iron-frontier-sub004/internal/constants"
)

// The resolver is the probabilistic heart of the engine. Every function
// here is pure given its numeric inputs and an injected Dice source, which
// is what makes deterministic replay and scenario testing possible.

// ResolveHitChance computes the percentage chance for an attack to land.
// Accuracy, plus the aimed-shot bonus when applicable, minus a penalty per
// hex beyond optimal range, minus the defender's evasion. The result is
// clamped to [5, 95]: no attack is ever guaranteed or impossible.
func ResolveHitChance(attackerAccuracy, defenderEvasion, rangeToTarget int, aimed bool) int {
	chance := attackerAccuracy
	if aimed {
		chance += constants.AimedShotBonus
	}
	if over := rangeToTarget - constants.OptimalRange; over > 0 {
		chance -= over * constants.RangePenaltyPerHex
	}
	chance -= defenderEvasion
	if chance < constants.HitChanceMin {
		chance = constants.HitChanceMin
	}
	if chance > constants.HitChanceMax {
		chance = constants.HitChanceMax
	}
	return chance
}

// ResolveDamage computes the damage of a successful hit: base damage scaled
// by attacker level, doubled on a critical, reduced by armor. Armor can
// mitigate but never fully negate a hit, so the floor is 1.
func ResolveDamage(baseDamage, attackerLevel, defenderArmor int, critical bool) int {
	dmg := baseDamage + attackerLevel/constants.DamageLevelDivisor
	if critical {
		dmg *= 2
	}
	dmg -= defenderArmor
	if dmg < constants.MinDamage {
		dmg = constants.MinDamage
	}
	return dmg
}

// RollHit draws once and compares against the computed hit chance.
func RollHit(d *Dice, hitChance int) bool {
	return d.Percent() <= hitChance
}

// RollCritical draws once against the fixed critical chance, independent of
// the hit roll.
func RollCritical(d *Dice) bool {
	return d.Percent() <= constants.CritChancePercent
}

// FleeChance derives the escape chance from the actor's level, clamped to
// the same band as hit chances.
func FleeChance(level int) int {
	chance := constants.FleeBaseChance + level*constants.FleeLevelBonus
	if chance < constants.HitChanceMin {
		chance = constants.HitChanceMin
	}
	if chance > constants.HitChanceMax {
		chance = constants.HitChanceMax
	}
	return chance
}
