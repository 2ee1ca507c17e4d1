// SPDX-License-Identifier: MIT

package oracle

import "errors"

// ErrUnknownCheck indicates a check name that is not in the registry.
var ErrUnknownCheck = errors.New("oracle: unknown check")
