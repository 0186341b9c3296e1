/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strconv"
)

// convertValue applies the field's "!x" conversion flag before formatting.
// "s" stringifies the value; "r" and "q" produce a quoted representation.
// Unrecognized flags stringify, matching the never-fatal resolution stance.
func convertValue(v any, conv byte) any {
	switch conv {
	case 0:
		return v
	case 's':
		return fmt.Sprint(v)
	case 'r', 'q':
		return strconv.Quote(fmt.Sprint(v))
	default:
		return fmt.Sprint(v)
	}
}
