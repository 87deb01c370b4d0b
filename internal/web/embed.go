package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// subFS roots dir of fsys, so template names and static urls carry no prefix.
func subFS(fsys embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		// dir is a compile time constant embedded above
		panic(err)
	}

	return http.FS(sub)
}
