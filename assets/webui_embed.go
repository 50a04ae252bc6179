// Package assets holds the embedded web UI served over sleepy://.
package assets

import (
	"embed"
)

// WebUIAssets contains the embedded UI files (index page, stylesheet, app
// script). The scheme handler serves these under sleepy://app/.
//
//go:embed webui/*
var WebUIAssets embed.FS

// IndexHTML returns the UI entry page.
func IndexHTML() []byte {
	return mustAsset("webui/index.html")
}

// StyleCSS returns the UI stylesheet.
func StyleCSS() []byte {
	return mustAsset("webui/style.css")
}

// AppJS returns the UI application script.
func AppJS() []byte {
	return mustAsset("webui/app.js")
}

func mustAsset(name string) []byte {
	data, err := WebUIAssets.ReadFile(name)
	if err != nil {
		panic("embedded asset missing: " + name)
	}
	return data
}
