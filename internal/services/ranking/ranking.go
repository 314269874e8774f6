// Package ranking computes per-class and global rankings from a roster and
// ledger snapshot. It is a pure read-side projection: no state, recomputed
// on demand.
package ranking

import (
	"sort"

	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/ledger"
	"github.com/quadro-app/quadro/internal/services/roster"
)

// Entry is one ranked designer. Rank is 0 for designers with no points:
// they are listed but displayed as unranked.
type Entry struct {
	Handle      model.Handle
	DisplayName string
	Class       model.ClassTier
	Team        model.TeamLabel
	RoomID      int
	Total       float64
	Rank        int
}

// Rankings holds the per-class and global projections
type Rankings struct {
	ByClass map[model.ClassTier][]Entry
	Global  []Entry
}

// Compute builds rankings over the active seated population. Sorting is
// stable on descending total; equal totals keep arrival order and still get
// sequential ranks, two designers on the same total are ranked 1 and 2, not
// tied.
func Compute(rosterEngine *roster.Engine, scoreLedger *ledger.Ledger) Rankings {
	var entries []Entry
	for _, sd := range rosterEngine.SeatedDesigners() {
		if sd.Designer.Status != model.StatusActive {
			continue
		}
		entries = append(entries, Entry{
			Handle:      sd.Designer.Handle,
			DisplayName: sd.Designer.DisplayName,
			Class:       sd.Designer.Class,
			Team:        sd.Team,
			RoomID:      sd.RoomID,
			Total:       scoreLedger.TotalFor(sd.Designer.Handle),
		})
	}

	result := Rankings{ByClass: make(map[model.ClassTier][]Entry)}
	for _, class := range model.ClassTiers {
		var subset []Entry
		for _, e := range entries {
			if e.Class == class {
				subset = append(subset, e)
			}
		}
		if len(subset) == 0 {
			continue
		}
		result.ByClass[class] = rank(subset)
	}

	global := make([]Entry, len(entries))
	copy(global, entries)
	result.Global = rank(global)
	return result
}

// rank sorts entries by descending total (stable) and numbers those with a
// positive total sequentially from 1.
func rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})
	next := 1
	for i := range entries {
		if entries[i].Total > 0 {
			entries[i].Rank = next
			next++
		}
	}
	return entries
}
