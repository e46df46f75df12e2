// Package loopback is an interactive recursive pixel-feedback editor for
// [Ebitengine].
//
// A fixed-resolution RGBA framebuffer is redrawn every tick by feeding the
// previous frame through a set of user-manipulable viewport transforms
// (positioned, rotated, scaled, semi-transparent windows onto the whole
// frame), producing a nested video-feedback visual. Each viewport carries
// manipulation handles (rotate, translate, scale, delete) that are
// hit-tested in the viewport's own local space.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	world := loopback.NewWorld(loopback.DefaultConfig())
//	loopback.Run(world, loopback.RunConfig{Title: "loopback", ShowFPS: true})
//
// For full control, implement [ebiten.Game] yourself (or embed [Game]) and
// drive [World.Update] and [World.Draw] directly:
//
//	smp := sampler.Sample()
//	world.Update(smp.Cursor, smp.Click)
//	frame := world.Draw(loopback.ModeDual)
//	screen.WritePixels(frame)
//
// # Model
//
// [World] owns the ordered viewport objects (front first: first to be
// hit-tested, drawn on top), the spawn hot-zone, and the double-buffered
// frames. One logical tick is one input sample dispatched through
// [World.Update] followed by one [World.Draw]. Everything is
// single-threaded; the core never reads the clock or any process-global
// state.
//
// [DrawMode] selects the passes: ModeDual runs feedback and overlay,
// ModeEdit freezes the feedback image, ModeView hides the editing chrome.
//
// Synthetic input via [Sampler.InjectDrag] and friends, or a JSON script
// through [LoadTestScript], replays deterministic interaction sequences for
// tests and demos.
//
// [Ebitengine]: https://ebitengine.org
package loopback
