// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrSinkNotConfigured = errors.New("sink not configured")
	ErrSinkConfigured    = errors.New("sink already configured")
	ErrSinkNotStarted    = errors.New("sink not started")
	ErrSinkClosed        = errors.New("sink closed")
)
