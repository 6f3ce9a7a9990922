//go:build !unix

package hasher

// sysInfo has no portable equivalent here; every file reports the zero
// identity and hard-link detection is effectively disabled.
func sysInfo(path string) (uint64, uint64) {
	return 0, 0
}
