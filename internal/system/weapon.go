// internal/system/weapon.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"line-defense/internal/interfaces"
	"line-defense/internal/types"
	"line-defense/internal/utils"
	"math"
)

const (
	leadMinDistance = 20.0
	leadMinSpeed    = 0.1
	leadIterations  = 4
	// Радиус клика, в котором выбирается ручная цель.
	manualPickRadius = 200.0
)

// WeaponSystem стреляет основным оружием: упреждение, очередь залпов и веер пуль.
type WeaponSystem struct {
	ecs             *entity.ECS
	progress        *ProgressionSystem
	audio           interfaces.Audio
	eventDispatcher *event.Dispatcher

	manualTarget types.EntityID
	burstQueue   [][]float64
	burstTimer   float64
}

func NewWeaponSystem(ecs *entity.ECS, progress *ProgressionSystem, audio interfaces.Audio, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, progress: progress, audio: audio, eventDispatcher: eventDispatcher}
}

// Stats returns the weapon as derived from the current skill levels.
func (s *WeaponSystem) Stats() WeaponStats {
	return s.progress.Weapon(config.PlayerDamage)
}

// SelectTargetAt pins the nearest live enemy within reach of the click, or clears the pin.
func (s *WeaponSystem) SelectTargetAt(x, y float64) {
	s.manualTarget = 0
	if e := nearestEnemy(s.ecs, x, y); e != nil && utils.Dist(x, y, e.X, e.Y) <= manualPickRadius {
		s.manualTarget = e.ID
	}
}

// ManualTarget returns the pinned enemy while it is still a valid target.
func (s *WeaponSystem) ManualTarget() (*component.Enemy, bool) {
	if s.manualTarget == 0 {
		return nil, false
	}
	e, ok := s.ecs.Enemy(s.manualTarget)
	if !ok || !playerArc(s.ecs.Player).Contains(e.X, e.Y) {
		s.manualTarget = 0
		return nil, false
	}
	return e, true
}

// Update fires queued volleys and starts a new shot when the weapon is ready.
// No new shot starts while volleys of the previous one are still queued.
func (s *WeaponSystem) Update(dt float64) {
	p := s.ecs.Player
	ws := s.Stats()
	p.FireInterval = ws.Interval
	p.Update(dt)

	if len(s.burstQueue) > 0 {
		s.burstTimer += dt
		if s.burstTimer >= config.BurstIntervalSec {
			s.burstTimer = 0
			s.fireVolley(s.burstQueue[0], ws)
			s.burstQueue = s.burstQueue[1:]
		}
	}

	target, ok := s.ManualTarget()
	if len(s.burstQueue) > 0 || !p.CanFire() {
		return
	}
	if !ok {
		target = nearestEnemyInArc(s.ecs)
	}
	// Без цели не стреляем и не уходим в перезарядку.
	if target == nil {
		return
	}
	p.ConsumeFire()
	s.shoot(target, ws)
}

func (s *WeaponSystem) shoot(target *component.Enemy, ws WeaponStats) {
	p := s.ecs.Player
	v := target.Velocity(s.ecs.GameTime)
	aimX, aimY := PredictIntercept(p.X, p.Y, target.X, target.Y, v.VX, v.VY, config.BulletSpeed)
	base := math.Atan2(aimY-p.Y, aimX-p.X)
	angles := SpreadAngles(base, ws.Bullets, ws.SpreadAngle)

	s.burstQueue = s.burstQueue[:0]
	s.burstTimer = 0
	for i := 1; i < ws.Burst; i++ {
		s.burstQueue = append(s.burstQueue, angles)
	}
	s.fireVolley(angles, ws)
}

func (s *WeaponSystem) fireVolley(angles []float64, ws WeaponStats) {
	p := s.ecs.Player
	for _, a := range angles {
		id := s.ecs.NewEntity()
		b := component.NewBullet(id, p.X, p.Y-config.BulletMuzzleOffset,
			math.Cos(a)*config.BulletSpeed, math.Sin(a)*config.BulletSpeed,
			ws.Damage, 0, ws.Pierce)
		s.ecs.Bullets.Add(id, b)
	}
	s.audio.PlayOneShot(interfaces.SoundShot)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: len(angles)})
}

// PredictIntercept leads a moving target by fixed-point iteration on the flight time.
// Close or still targets are aimed at directly.
func PredictIntercept(fromX, fromY, tx, ty, vx, vy, speed float64) (float64, float64) {
	dist := utils.Dist(fromX, fromY, tx, ty)
	if dist < leadMinDistance || (math.Abs(vx) < leadMinSpeed && math.Abs(vy) < leadMinSpeed) {
		return tx, ty
	}
	px, py := tx, ty
	t := dist / speed
	for i := 0; i < leadIterations; i++ {
		px = tx + vx*t
		py = ty + vy*t
		t = utils.Dist(fromX, fromY, px, py) / speed
	}
	return px, py
}

// SpreadAngles fans n bullets over spread radians so that one lane hits the aim point:
// the first lane for an even count, the middle one for an odd count.
func SpreadAngles(base float64, n int, spread float64) []float64 {
	if n <= 1 {
		return []float64{base}
	}
	out := make([]float64, n)
	if n%2 == 0 {
		for i := range out {
			out[i] = base + float64(i)/float64(n-1)*spread
		}
		return out
	}
	mid := n / 2
	half := float64(n-1) / 2
	for i := range out {
		out[i] = base + float64(i-mid)/half*(spread/2)
	}
	return out
}
