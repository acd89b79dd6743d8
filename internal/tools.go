//go:build tools

package shortpath

import (
	_ "github.com/dmarkham/enumer"
)
