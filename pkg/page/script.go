package page

import (
	_ "embed"
)

//go:embed folio.js
var script []byte

// Script returns the client script served as ScriptName.
func Script() (js []byte) {
	js = script
	return js
}
