//go:build windows

package autocad

import (
	"fmt"
	"path/filepath"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// exportViaCOM drives a hidden AutoCAD instance through its automation
// interface: open the document, export it as FBX, close without saving.
func exportViaCOM(dwgPath, fbxPath string) error {
	if err := ole.CoInitialize(0); err != nil {
		return errCOMUnavailable
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("AutoCAD.Application")
	if err != nil {
		// AutoCAD not registered as a COM server on this machine
		return errCOMUnavailable
	}
	acad, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return errCOMUnavailable
	}
	defer acad.Release()

	if _, err := oleutil.PutProperty(acad, "Visible", false); err != nil {
		return fmt.Errorf("hiding AutoCAD window: %w", err)
	}

	absDWG, err := filepath.Abs(dwgPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dwgPath, err)
	}
	absFBX, err := filepath.Abs(fbxPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", fbxPath, err)
	}

	docsVar, err := oleutil.GetProperty(acad, "Documents")
	if err != nil {
		return fmt.Errorf("getting Documents collection: %w", err)
	}
	docs := docsVar.ToIDispatch()
	defer docs.Release()

	docVar, err := oleutil.CallMethod(docs, "Open", absDWG)
	if err != nil {
		oleutil.CallMethod(acad, "Quit")
		return fmt.Errorf("opening %s: %w", dwgPath, err)
	}
	doc := docVar.ToIDispatch()
	defer doc.Release()

	if _, err := oleutil.CallMethod(doc, "Export", absFBX, "FBX"); err != nil {
		oleutil.CallMethod(doc, "Close", false)
		oleutil.CallMethod(acad, "Quit")
		return fmt.Errorf("exporting %s: %w", fbxPath, err)
	}

	if _, err := oleutil.CallMethod(doc, "Close", false); err != nil {
		fmt.Printf("Warning: failed to close document: %v\n", err)
	}
	if _, err := oleutil.CallMethod(acad, "Quit"); err != nil {
		fmt.Printf("Warning: failed to quit AutoCAD: %v\n", err)
	}

	return nil
}
