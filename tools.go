//go:build tools

// Package tools pins the versions of the build tools used by this module.
// The Android and iOS builds of giocalc are made with gogio:
//
//	go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import (
	_ "gioui.org/cmd/gogio"
)
