package tabulator

import (
	"fmt"

	fs "github.com/ungerik/go-fs"
)

// Version of the table widget distribution the adapter is written against.
const Version = "5.5.2"

// CDN URLs of the pinned widget distribution,
// for pages that load the widget without a local copy.
const (
	CSSURL = "https://unpkg.com/tabulator-tables@" + Version + "/dist/css/tabulator.min.css"
	JSURL  = "https://unpkg.com/tabulator-tables@" + Version + "/dist/js/tabulator.min.js"
)

// Dist points to the stylesheet and script of a local,
// unpacked widget distribution.
type Dist struct {
	CSS fs.File
	JS  fs.File
}

// LocalDist resolves the stylesheet and script within the unpacked
// widget distribution directory dir, returning an error when the
// directory or one of the two files does not exist.
func LocalDist(dir fs.File) (*Dist, error) {
	if !dir.IsDir() {
		return nil, fmt.Errorf("widget dist directory not found: %s", dir)
	}
	dist := &Dist{
		CSS: dir.Join("css", "tabulator.min.css"),
		JS:  dir.Join("js", "tabulator.min.js"),
	}
	if !dist.CSS.Exists() {
		return nil, fmt.Errorf("widget stylesheet not found: %s", dist.CSS)
	}
	if !dist.JS.Exists() {
		return nil, fmt.Errorf("widget script not found: %s", dist.JS)
	}
	return dist, nil
}
