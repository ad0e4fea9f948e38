//go:build purego || !(amd64 || arm64)

package blend

import (
	_ "github.com/cwbudde/algo-blend/blend/internal/arch/generic"
)
