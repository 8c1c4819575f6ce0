package main

import "github.com/tanema/gween"

// Action is what happens while its tween runs and once it finishes.
// nexts start the following tweens of a chain.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next chains t after a. The returned action is copied into g.Tweens only
// when a finishes, so it can still be filled in until then.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts, func(g *Game) {
		g.Tweens[t] = *action
	})
	return action
}

// updateTweens advances every running tween by dt and starts the next
// links of finished chains.
func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}
