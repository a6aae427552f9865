package testdata

import "github.com/sublee/declare" // want `file must have "//go:build declare" constraint when importing declare`

var _ = declare.Overlay
