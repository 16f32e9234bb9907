package combat

import "github.com/udisondev/dungeoncrawl/internal/model"

// AttackUntilHit repeats an attack until it lands as a plain HIT.
// Returns the outcome and the number of attempts.
func AttackUntilHit(e *Engine, attacker, defender model.Combatant, at AttackType, maxAttempts int) (Outcome, int) {
	for attempt := range maxAttempts {
		out := e.ResolveAttack(attacker, defender, at)
		if out.Result == ResultHit {
			return out, attempt + 1
		}
		if out.TargetDefeated {
			return out, attempt + 1
		}
	}
	return Outcome{Result: ResultMiss}, maxAttempts
}

// AttackUntilDead repeats an attack until the defender dies.
// Returns the number of attacks made.
func AttackUntilDead(e *Engine, attacker, defender model.Combatant, at AttackType, maxAttempts int) int {
	for attempt := range maxAttempts {
		if defender.Base().IsDead() {
			return attempt
		}
		e.ResolveAttack(attacker, defender, at)
	}
	return maxAttempts
}
