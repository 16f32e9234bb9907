package model

// MaxDamage caps any single damage or healing amount.
const MaxDamage = 1_000_000

// ClampDamage bounds a damage (or heal) amount to [0, MaxDamage].
// Every health mutation goes through here.
func ClampDamage(amount int) int {
	if amount < 0 {
		return 0
	}
	if amount > MaxDamage {
		return MaxDamage
	}
	return amount
}

// ClampHealth bounds hp to [0, maxHP].
func ClampHealth(hp, maxHP int) int {
	if maxHP < 0 {
		maxHP = 0
	}
	if hp < 0 {
		return 0
	}
	if hp > maxHP {
		return maxHP
	}
	return hp
}
