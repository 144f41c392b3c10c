// Package walker is a small [Ebitengine] demo of a sprite walking over a
// static background, animated from a 4x4 sprite-sheet atlas.
//
// Each row of the atlas is one walk cycle (up, right, left, down from top to
// bottom in texture space) and each column one frame. Holding a direction key
// moves the sprite a fixed step per frame and advances the walk cycle at most
// once every [DefaultFrameDuration] seconds. Changing direction switches rows
// immediately and restarts the cycle at the first column.
//
// Frame deltas come from the wall clock between Update calls, so the walk
// rate depends on the tick rate. At 60 TPS fifteen deltas of 1/60 s sum to
// slightly less than 0.25 in floating point, and the gate opens on the
// sixteenth tick (about 0.267 s per frame) rather than the fifteenth.
//
// # Quick start
//
//	cfg := walker.DefaultConfig()
//	scene, err := walker.NewScene(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer scene.Close()
//	if err := walker.Run(scene); err != nil {
//		log.Fatal(err)
//	}
//
// Configuration is read from YAML with [LoadConfig]; every field has a
// default so an empty file is valid.
//
// # Controls
//
// W/A/S/D or the arrow keys walk. When several direction keys are held the
// first of up, down, left, right wins. Space spins the sprite once, F12 saves a
// screenshot and Escape quits. All bindings can be changed in the keys section
// of the config.
//
// # Rendering
//
// Both the background and the sprite are textured quads. Vertex positions are
// transformed on the CPU by an orthographic projection and a
// translate-rotate-scale model matrix built with [mathgl], then drawn through a
// Kage shader that samples the texture bilinearly with clamp-to-edge.
//
// # Headless runs
//
// [RunHeadless] steps a scene without opening a window, using a fixed clock.
// Combined with a JSON test script (see [LoadTestScript]) it drives the walk
// cycle deterministically, which is how the demo is exercised in CI.
//
// # Events
//
// Each time the walk cycle advances the scene emits an [AnimationEvent] to the
// [EventStore] set with [Scene.SetEventStore]. The ecs subpackage publishes
// them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [mathgl]: https://github.com/go-gl/mathgl
// [Donburi]: https://github.com/yohamta/donburi
package walker
