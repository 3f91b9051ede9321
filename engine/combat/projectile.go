package combat

import "github.com/1siamBot/tribal-sim/engine/world"

// ResolveProjectiles runs the tick's projectile-resolution phase (spec.md
// §5 phase 3): every scheduled projectile's countdown decrements, and
// any reaching zero applies its impact effect before being dropped.
func ResolveProjectiles(w *world.World) {
	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.TicksRemaining--
		if p.TicksRemaining > 0 {
			live = append(live, p)
			continue
		}
		impact(w, p)
	}
	w.Projectiles = live
}

func impact(w *world.World, p world.Projectile) {
	if p.AoERadius <= 0 {
		if target := w.GetThing(p.TargetPos); target != nil {
			ApplyDamage(w, p.AttackerTeam, p.SiegeAttacker, target, p.Damage)
		}
		return
	}
	for dy := -p.AoERadius; dy <= p.AoERadius; dy++ {
		for dx := -p.AoERadius; dx <= p.AoERadius; dx++ {
			cell := p.TargetPos.Add(dx, dy)
			if target := w.GetThing(cell); target != nil {
				ApplyDamage(w, p.AttackerTeam, p.SiegeAttacker, target, p.Damage)
			}
		}
	}
}
