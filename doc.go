// Package certgen stamps personalized text onto a fixed image template,
// producing one output image per input record at high throughput.
//
// # Quick Start
//
// Create an engine from raw template bytes and run a batch of jobs:
//
//	tpl, err := os.ReadFile("template.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine, err := certgen.NewEngine(certgen.Config{
//	    Template:    tpl,
//	    Box:         certgen.Box{X: 579, Y: 611, W: 840, H: 199},
//	    FontPath:    "fonts/DejaVuSans-Bold.ttf",
//	    MaxFontSize: 72,
//	}, certgen.WithSink(certgen.NewDirSink("output")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := engine.Run(ctx, jobs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d ok, %d failed\n", report.Summary.Succeeded, report.Summary.Failed)
//
// # Rendering Pipeline
//
// Each job passes through these stages inside a worker:
//
//  1. Auto-fit: find the largest font size (within a ceiling and a floor)
//     whose rendered bounding box fits the placement box.
//  2. Composite: copy the worker's decoded template and draw the text,
//     horizontally centered, vertically anchored (center or bottom).
//  3. Encode: JPEG or PNG, chosen by the destination extension.
//  4. Write: hand the encoded bytes to the configured Sink.
//
// # Parallel Processing
//
// Run partitions jobs into contiguous batches and fans them out across a
// fixed pool of workers. Each worker owns its own decoded template copy
// and its own FontCache, built once before its first batch, so rendering
// itself needs no locking. A per-job failure is recorded in that job's
// Result and never aborts the batch or the worker.
//
// # Fonts
//
// Font resolution never fails: the requested path is tried first, then a
// list of platform default fonts, then the embedded Go Regular face. If a
// face cannot be created at a given size, a minimal fixed-size bitmap face
// is used. A degraded font is still a successful render.
package certgen
