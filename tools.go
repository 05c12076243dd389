//go:build tools
// +build tools

// Package tools pins the code generators invoked through go:generate (mockgen),
// so go.mod and go.sum keep tracking them.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
