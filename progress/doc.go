// Package progress renders single-line terminal progress bars.
//
//	for i := 1; i <= total; i++ {
//	    work(i)
//	    _ = progress.Render(os.Stdout, i, total, "Progress:", "Complete", 50, "#")
//	}
//
// Pacing is left to the caller.
package progress
