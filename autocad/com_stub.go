//go:build !windows

package autocad

// exportViaCOM is only implemented on Windows.
func exportViaCOM(dwgPath, fbxPath string) error {
	return errCOMUnavailable
}
