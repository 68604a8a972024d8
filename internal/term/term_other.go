//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package term

func width(uintptr) (int, bool) {
	return 0, false
}
