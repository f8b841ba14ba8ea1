// Package grove is a procedural, season-themed tree-growth simulator for
// [Ebitengine].
//
// A Scene expands a bracketed rewriting grammar into layered branch segments,
// reveals them gradually under an externally driven progress value, scatters
// leaves along grown branches, and drops detached leaves onto a procedurally
// generated terraced ground.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	rng := rand.New(rand.NewPCG(1, uint64(time.Now().UnixNano())))
//	scene := grove.NewScene(grove.SeasonSummer, 960, 640, rng)
//	var cell grove.ProgressCell
//	// ... have a producer goroutine call cell.Store ...
//	grove.Run(scene, &cell, grove.RunConfig{Title: "Grove", ShowHUD: true})
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Advance]
// once per tick with the current progress, then draw through a [Renderer].
//
// # Simulation model
//
// One tick runs entirely on the game goroutine: the [GrowthScheduler] reads
// progress, releases newly eligible layers into its queue, drains a bounded
// number of segments (each scattering leaves via the [LeafField]), and
// falling leaves integrate against the [Ground] height field. Season changes
// and window resizes rebuild the whole scene atomically between ticks.
//
// The only cross-goroutine input is the progress scalar, modeled by
// [ProgressCell]: an asynchronous producer (a gesture recognizer, a timer,
// anything) stores the latest value and the tick reads it once.
//
// [Ebitengine]: https://ebitengine.org
package grove
