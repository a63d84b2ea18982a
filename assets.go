package main

import (
	"embed"
	"path"

	"fyne.io/fyne/v2"
)

//go:embed assets
var embeddedAssets embed.FS

var resourceIcon fyne.Resource

// loadResources initializes the global resource variables. This must
// be called after the Fyne app has been created.
func loadResources() {
	resourceIcon = mustLoadResource("assets/ui/icon.png")
}

// mustLoadResource loads a resource from the embedded filesystem and panics on error.
func mustLoadResource(p string) fyne.Resource {
	data, err := embeddedAssets.ReadFile(p)
	if err != nil {
		// A missing embedded asset is a build defect, not a runtime condition.
		panic("failed to load embedded asset " + p + ": " + err.Error())
	}
	return fyne.NewStaticResource(path.Base(p), data)
}
