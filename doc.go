// Package seedpaint renders procedural images reproducibly: the same sketch,
// settings, and seed give the same image on every run and every machine.
//
// # Quick start
//
// The simplest way to preview a sketch is [Run], which creates a window with
// live settings editing and PNG export:
//
//	seedpaint.Run(seedpaint.Lines{}, seedpaint.RunConfig{
//		Title: "Lines", Width: 640, Height: 480,
//	})
//
// For headless rendering, bind a [Generator] to a [Raster] and write the
// result with [WritePNG]:
//
//	r := seedpaint.NewRaster(100, 100)
//	gen, _ := seedpaint.NewGenerator(seedpaint.Lines{}, r, seedpaint.GeneratorConfig{})
//	_ = gen.Initialize()
//	res, _ := gen.Generate()
//	_ = seedpaint.WritePNG(seedpaint.ExportName(res), r.Image())
//
// # Sketches
//
// A [Sketch] declares its settings as [Param] descriptors and draws into a
// [Surface] through a [Frame]. Every random value comes from the frame's
// [RNG], which the generator reseeds from the seed setting before each
// generation, so draw order alone decides the image.
//
// Settings are validated against their declared range and step; rejected
// writes leave the previous value in place. [Schema.ApplyJSON] and
// [Schema.MarshalJSON] move whole settings sets in and out as JSON.
//
// # Surfaces
//
// [Canvas] draws with Ebitengine triangles and backs the interactive viewer.
// [Raster] draws on the CPU with [gg] and needs no graphics device.
// [Recorder] draws nothing and digests the call stream, which is what
// [Replay] scripts check. [Tee] drives several surfaces at once.
//
// [gg]: https://github.com/fogleman/gg
package seedpaint
