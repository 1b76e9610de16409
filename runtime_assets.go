package enrollform

import (
	"io/fs"

	vanilla "github.com/goliatone/go-enrollform/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and the validation script the page
// links, for applications that mount the page under their own router.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(enrollform.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
