//go:build !unix

package beautty

import "golang.org/x/term"

func windowSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// notifyResize is a no-op where there is no SIGWINCH.
func notifyResize(ch chan<- struct{}) func() {
	return func() {}
}
