package invaders

import (
	"time"

	"github.com/vovakirdan/spacey-invader/internal/core"
)

const frame = time.Second / 60

// fixedRand always returns the same value.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

// recordingVisuals remembers every callback.
type recordingVisuals struct {
	kinds     map[Handle]Kind
	scales    map[Handle]float64
	sheets    map[Handle]SheetID
	frames    map[Handle][]int
	despawned []Handle
}

func newRecordingVisuals() *recordingVisuals {
	return &recordingVisuals{
		kinds:  make(map[Handle]Kind),
		scales: make(map[Handle]float64),
		sheets: make(map[Handle]SheetID),
		frames: make(map[Handle][]int),
	}
}

func (v *recordingVisuals) SpawnVisual(h Handle, kind Kind, _ core.Vec2, scale float64, sheet SheetID) {
	v.kinds[h] = kind
	v.scales[h] = scale
	v.sheets[h] = sheet
}

func (v *recordingVisuals) DespawnVisual(h Handle) {
	v.despawned = append(v.despawned, h)
}

func (v *recordingVisuals) SetSpriteFrame(h Handle, frame int) {
	v.frames[h] = append(v.frames[h], frame)
}

// testWorld builds a world on a manual clock. A fixed rand of 0.5 spawns
// enemies at x=0 and never lets them fire.
func testWorld(r Rand) (*World, *ManualClock, *recordingVisuals) {
	if r == nil {
		r = fixedRand{0.5}
	}
	clk := &ManualClock{}
	vis := newRecordingVisuals()
	w := NewWorld(Options{Rand: r, Clock: clk, Visuals: vis})
	return w, clk, vis
}

// advance moves the clock by d and runs one tick.
func advance(w *World, clk *ManualClock, d time.Duration, actions ...core.Action) TickReport {
	clk.Advance(d)
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return w.Tick(in)
}

// spawnPlayer advances to the first player spawn check.
func spawnPlayer(w *World, clk *ManualClock) *Entity {
	advance(w, clk, PlayerSpawnCheck)
	_, p, ok := w.Player()
	if !ok {
		panic("player did not spawn")
	}
	return p
}

func placeEnemy(w *World, x, y float64) Handle {
	h := w.spawn(newEnemy(vec(x, y)))
	w.state.EnemySpawned()
	return h
}

func placeBullet(w *World, x, y float64, origin Origin) Handle {
	return w.spawn(newBullet(vec(x, y), origin))
}

func countBullets(w *World, origin Origin) int {
	n := 0
	w.Store().EachKind(KindBullet, func(_ Handle, e *Entity) {
		if e.Origin == origin {
			n++
		}
	})
	return n
}
