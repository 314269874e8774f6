// Package backup packages every collection into a zip archive of JSON
// documents and restores them from one. Import validates that the required
// entries are present before anything is touched.
package backup

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/quadro-app/quadro/internal/model"
)

// Archive entry names
const (
	roomsEntry    = "rooms.json"
	eventsEntry   = "events.json"
	totalsEntry   = "totals.json"
	inactiveEntry = "inactive.json"
	accountsEntry = "accounts.json"
	auditEntry    = "audit.json"
)

var requiredEntries = []string{roomsEntry, eventsEntry, totalsEntry, inactiveEntry, accountsEntry}

// Archive holds every persisted collection
type Archive struct {
	Rooms    []model.Room
	Events   []model.EvaluationEvent
	Totals   map[model.Handle]float64
	Inactive []model.InactiveRecord
	Accounts []model.Account
	Audit    []model.AuditEntry
}

// Export writes the archive as a zip of JSON entries
func Export(w io.Writer, a Archive) error {
	zw := zip.NewWriter(w)
	entries := []struct {
		name string
		data any
	}{
		{roomsEntry, a.Rooms},
		{eventsEntry, a.Events},
		{totalsEntry, a.Totals},
		{inactiveEntry, a.Inactive},
		{accountsEntry, a.Accounts},
		{auditEntry, a.Audit},
	}
	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("backup: create %s: %w", e.name, err)
		}
		if err := json.NewEncoder(f).Encode(e.data); err != nil {
			return fmt.Errorf("backup: encode %s: %w", e.name, err)
		}
	}
	return zw.Close()
}

// Import reads an archive written by Export. Missing required entries fail
// the import; a missing audit entry is tolerated.
func Import(r io.ReaderAt, size int64) (Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Archive{}, fmt.Errorf("backup: open archive: %w", err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	for _, name := range requiredEntries {
		if _, ok := files[name]; !ok {
			return Archive{}, fmt.Errorf("backup: archive is missing %s", name)
		}
	}

	var a Archive
	targets := []struct {
		name string
		out  any
	}{
		{roomsEntry, &a.Rooms},
		{eventsEntry, &a.Events},
		{totalsEntry, &a.Totals},
		{inactiveEntry, &a.Inactive},
		{accountsEntry, &a.Accounts},
		{auditEntry, &a.Audit},
	}
	for _, t := range targets {
		f, ok := files[t.name]
		if !ok {
			continue
		}
		if err := decodeEntry(f, t.out); err != nil {
			return Archive{}, err
		}
	}
	return a, nil
}

func decodeEntry(f *zip.File, out any) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", f.Name, err)
	}
	defer rc.Close()
	if err := json.NewDecoder(rc).Decode(out); err != nil {
		return fmt.Errorf("backup: decode %s: %w", f.Name, err)
	}
	return nil
}
