package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/quadro-app/quadro/internal/criteria"
	"github.com/quadro-app/quadro/internal/model"
	"github.com/quadro-app/quadro/internal/services/consolidation"
	"github.com/quadro-app/quadro/internal/services/ranking"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []model.Room:
		o.printRooms(v)
	case []model.EvaluationEvent:
		o.printHistory(v)
	case []model.InactiveRecord:
		o.printInactive(v)
	case ranking.Rankings:
		o.printRankings(v)
	case consolidation.Result:
		o.printConsolidation(v)
	case []model.Account:
		o.printAccounts(v)
	case []model.AuditEntry:
		o.printAudit(v)
	case []criteria.Criterion:
		o.printCriteria(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printRooms(rooms []model.Room) {
	w := newTable()
	fmt.Fprintln(w, "SALA\tEQUIPE\tOCUPADAS\tLIVRES\tPROJETISTAS")
	for _, room := range rooms {
		var occupants string
		for _, seat := range room.Seats {
			if seat.Occupant == nil {
				continue
			}
			if occupants != "" {
				occupants += ", "
			}
			occupants += fmt.Sprintf("%s (%s)", seat.Occupant.Handle, seat.Occupant.Class)
		}
		occupied := len(room.Seats) - room.FreeSeats()
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", room.ID, room.Team, occupied, room.FreeSeats(), occupants)
	}
	w.Flush()
}

func (o *Output) printHistory(events []model.EvaluationEvent) {
	w := newTable()
	fmt.Fprintln(w, "DATA\tATIVIDADE\tCRITÉRIO\tNOTA\tPONTOS")
	for _, ev := range events {
		score := "-"
		if ev.RawScore != nil {
			score = fmt.Sprintf("%d", *ev.RawScore)
		}
		points := "-"
		if ev.PointDelta != nil {
			points = formatPoints(*ev.PointDelta)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ev.Timestamp.Format("2006-01-02 15:04"), ev.Activity, ev.Category, score, points)
	}
	w.Flush()
}

func (o *Output) printInactive(records []model.InactiveRecord) {
	w := newTable()
	fmt.Fprintln(w, "PROJETISTA\tPONTOS PRESERVADOS\tREMOVIDO EM")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Handle, formatPoints(r.PreservedTotal), r.RemovedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func (o *Output) printRankings(r ranking.Rankings) {
	for _, class := range model.ClassTiers {
		entries := r.ByClass[class]
		if len(entries) == 0 {
			continue
		}
		fmt.Printf("Classe %s\n", class)
		printEntries(entries)
		fmt.Println()
	}
	fmt.Println("Geral")
	printEntries(r.Global)
}

func printEntries(entries []ranking.Entry) {
	w := newTable()
	fmt.Fprintln(w, "POS\tPROJETISTA\tCLASSE\tEQUIPE\tSALA\tPONTOS")
	for _, e := range entries {
		pos := "-"
		if e.Rank > 0 {
			pos = fmt.Sprintf("%d", e.Rank)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", pos, e.DisplayName, e.Class, e.Team, e.RoomID, formatPoints(e.Total))
	}
	w.Flush()
}

func (o *Output) printConsolidation(r consolidation.Result) {
	fmt.Printf("Consolidação para %s (sala %d)\n", r.Supervisor, r.RoomID)
	w := newTable()
	fmt.Fprintln(w, "CRITÉRIO\tMÉDIA\tAVALIAÇÕES\tPONTOS")
	for _, c := range r.Categories {
		fmt.Fprintf(w, "%s\t%.2f\t%d\t%s\n", c.Category, c.Mean, c.Evaluations, formatPoints(c.Award))
	}
	w.Flush()
	fmt.Printf("Total: %s\n", formatPoints(r.Total))
}

func (o *Output) printAccounts(accounts []model.Account) {
	w := newTable()
	fmt.Fprintln(w, "USUÁRIO\tNOME\tPAPEL\tATIVO\tSALA")
	for _, a := range accounts {
		room := "-"
		if a.AssignedRoom != 0 {
			room = fmt.Sprintf("%d", a.AssignedRoom)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", a.Username, a.DisplayName, a.Role, a.Enabled, room)
	}
	w.Flush()
}

func (o *Output) printAudit(entries []model.AuditEntry) {
	w := newTable()
	fmt.Fprintln(w, "DATA\tUSUÁRIO\tPAPEL\tAÇÃO\tDETALHES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Role, e.Action, e.Details)
	}
	w.Flush()
}

func (o *Output) printCriteria(rows []criteria.Criterion) {
	w := newTable()
	fmt.Fprintln(w, "NOTA\tDESCRIÇÃO")
	for _, c := range rows {
		fmt.Fprintf(w, "%d\t%s\n", c.Score, c.Description)
	}
	w.Flush()
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// formatPoints trims the trailing zero off whole totals, 3 not 3.0
func formatPoints(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.1f", p)
}
