//go:build arm64 && !purego

package blend

import (
	_ "github.com/cwbudde/algo-blend/blend/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-blend/blend/internal/arch/generic"
)
