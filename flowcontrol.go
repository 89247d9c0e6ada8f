// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import "errors"

// Flow-control values a handler can return to steer the dispatch loop
// without being treated as an error (spec.md §4.4). The source this
// spec is drawn from raises these as exceptions; this package instead
// uses ordinary error values so dispatch stays within Go's normal
// error-return idiom: DispatchHalt (spec.md §7) is never seen outside
// this package, it is fully absorbed by the dispatcher.
var (
	// ErrSkipThis abandons the current route's contribution and
	// continues the dispatch loop at the next candidate route.
	ErrSkipThis = errors.New("router: skip this route")

	// ErrSkipRemaining stops the dispatch loop entirely; no further
	// candidate routes are tried for this request.
	ErrSkipRemaining = errors.New("router: skip all remaining routes")

	// ErrAbort halts dispatch with a generic (no status code) signal.
	// Prefer Abort(code) when a specific HTTP status is known.
	ErrAbort = errors.New("router: dispatch aborted")
)

// skipNext is returned by SkipNext(n) to skip the next n candidate
// routes after the current one.
type skipNext struct {
	n int
}

func (e *skipNext) Error() string { return "router: skip next routes" }

// SkipNext returns a flow-control value that skips the next n
// candidate routes after the current one. n defaults to 1 when it is
// zero or negative (spec.md §4.4 "n defaults to 1").
func SkipNext(n int) error {
	if n <= 0 {
		n = 1
	}
	return &skipNext{n: n}
}

// Abort returns a flow-control value that halts dispatch. If code is
// non-zero it is raised as an *HTTPError of that code; otherwise it is
// the generic ErrAbort (spec.md §4.4 "abort(code?)").
func Abort(code int) error {
	if code == 0 {
		return ErrAbort
	}
	return NewHTTPError(code, "")
}

// isFlowControl reports whether err is one of this package's
// flow-control signals (as opposed to an *HTTPError or an ordinary
// error that should be routed to the unknown-error path).
func isFlowControl(err error) bool {
	if errors.Is(err, ErrSkipThis) || errors.Is(err, ErrSkipRemaining) || errors.Is(err, ErrAbort) {
		return true
	}
	var sn *skipNext
	return errors.As(err, &sn)
}
