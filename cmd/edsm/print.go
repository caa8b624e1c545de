package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"go-edsm/pkg/edsm/models"

	"github.com/dustin/go-humanize"
)

func orDash[T ~string](v *T) string {
	if v == nil || *v == "" {
		return "-"
	}
	return string(*v)
}

func lightYears(v float64) string {
	return humanize.FormatFloat("#,###.##", v) + " ly"
}

func coords(c *models.Coordinate) string {
	if c == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s / %s / %s",
		humanize.FormatFloat("#,###.###", c.X),
		humanize.FormatFloat("#,###.###", c.Y),
		humanize.FormatFloat("#,###.###", c.Z))
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printSystem(w io.Writer, s *models.System) {
	fmt.Fprintf(w, "%s\n", s.Name)
	if s.ID != nil {
		fmt.Fprintf(w, "  EDSM id:     %d\n", *s.ID)
	}
	if s.ID64 != nil {
		fmt.Fprintf(w, "  id64:        %d\n", *s.ID64)
	}
	fmt.Fprintf(w, "  Coordinates: %s\n", coords(s.Coords))
	if s.RequirePermit != nil && *s.RequirePermit {
		fmt.Fprintf(w, "  Permit:      %s\n", orDash(s.PermitName))
	}

	info := s.Information
	if info == nil || info.Population == nil && info.Faction == nil && info.Allegiance == nil {
		fmt.Fprintln(w, "  Unpopulated")
		return
	}
	if info.Population != nil {
		fmt.Fprintf(w, "  Population:  %s\n", humanize.Comma(*info.Population))
	}
	fmt.Fprintf(w, "  Allegiance:  %s\n", orDash(info.Allegiance))
	fmt.Fprintf(w, "  Government:  %s\n", orDash(info.Government))
	fmt.Fprintf(w, "  Faction:     %s", orDash(info.Faction))
	if info.State != nil {
		fmt.Fprintf(w, " (%s)", info.State.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Security:    %s\n", orDash(info.Security))
	economy := orDash(info.Economy)
	if info.SecondEconomy != nil && *info.SecondEconomy != "" && *info.SecondEconomy != "None" {
		economy += ", " + string(*info.SecondEconomy)
	}
	fmt.Fprintf(w, "  Economy:     %s\n", economy)
	fmt.Fprintf(w, "  Reserve:     %s\n", orDash(info.Reserve))
}

func printSystemList(w io.Writer, systems []models.System) {
	if len(systems) == 0 {
		fmt.Fprintln(w, "No systems found")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tDISTANCE\tCOORDINATES\tPOPULATION")
	for i := range systems {
		s := &systems[i]
		distance := "-"
		if s.Distance != nil {
			distance = lightYears(*s.Distance)
		}
		population := "-"
		if s.Information != nil && s.Information.Population != nil {
			population = humanize.Comma(*s.Information.Population)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, distance, coords(s.Coords), population)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d systems\n", len(systems))
}

func printBodies(w io.Writer, s *models.System) {
	fmt.Fprintf(w, "%s: %d bodies", s.Name, len(s.Bodies))
	if !s.BodyCountMatches() {
		fmt.Fprintf(w, " (EDSM counts %d)", *s.BodyCount)
	}
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tTYPE\tARRIVAL\tTEMP\tNOTES\tUPDATED")
	for i := range s.Bodies {
		b := &s.Bodies[i]
		var notes []string
		if star, ok := b.Star(); ok {
			if star.IsMainStar {
				notes = append(notes, "main star")
			}
			if star.IsScoopable {
				notes = append(notes, "scoopable")
			}
		}
		if planet, ok := b.Planet(); ok {
			if planet.IsLandable {
				notes = append(notes, "landable")
			}
			if planet.TerraformingState != nil && *planet.TerraformingState != "" && *planet.TerraformingState != "Not terraformable" {
				notes = append(notes, strings.ToLower(*planet.TerraformingState))
			}
		}
		if n := len(b.Rings); n > 0 {
			notes = append(notes, fmt.Sprintf("%d rings", n))
		}
		if n := len(b.Belts); n > 0 {
			notes = append(notes, fmt.Sprintf("%d belts", n))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s ls\t%s K\t%s\t%s\n",
			b.Name,
			b.SubType,
			humanize.FormatFloat("#,###.", b.DistanceToArrival),
			humanize.FormatFloat("#,###.", b.SurfaceTemperature),
			strings.Join(notes, ", "),
			humanize.Time(b.UpdateTime.Time),
		)
	}
	tw.Flush()
}

func printFactions(w io.Writer, s *models.System, withHistory bool) {
	fmt.Fprintf(w, "%s\n", s.Name)
	if c := s.ControllingFaction; c != nil {
		fmt.Fprintf(w, "Controlled by %s (%s, %s)\n", c.Name, orDash(c.Allegiance), orDash(c.Government))
	}

	factions := append([]models.Faction(nil), s.Factions...)
	sort.SliceStable(factions, func(i, j int) bool {
		return factions[i].Influence > factions[j].Influence
	})

	tw := newTable(w)
	fmt.Fprintln(tw, "FACTION\tINFLUENCE\tSTATE\tALLEGIANCE\tUPDATED")
	for i := range factions {
		f := &factions[i]
		name := f.Name
		if f.IsPlayer {
			name += " [player]"
		}
		updated := "-"
		if f.LastUpdated != nil {
			updated = humanize.Time(f.LastUpdatedAt())
		}
		fmt.Fprintf(tw, "%s\t%s%%\t%s\t%s\t%s\n",
			name,
			humanize.FormatFloat("#,###.#", f.Influence*100),
			f.State,
			f.Allegiance,
			updated,
		)
	}
	tw.Flush()

	if withHistory {
		for i := range factions {
			printInfluenceHistory(w, &factions[i])
		}
	}
}

func printInfluenceHistory(w io.Writer, f *models.Faction) {
	if f.InfluenceHistory == nil || f.InfluenceHistory.IsEmpty() {
		return
	}
	entries := f.InfluenceHistory.Sorted()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s influence history\n", f.Name)
	for _, e := range entries {
		at := e.Key
		if !e.At.IsZero() {
			at = e.At.Format(time.DateOnly)
		}
		fmt.Fprintf(w, "  %s  %s%%\n", at, humanize.FormatFloat("#,###.#", e.Value*100))
	}
}

func printTraffic(w io.Writer, s *models.System) {
	fmt.Fprintf(w, "%s traffic\n", s.Name)
	printStatistic(w, s.Traffic)

	if len(s.TrafficBreakdown) == 0 {
		return
	}
	ships := make([]string, 0, len(s.TrafficBreakdown))
	for ship := range s.TrafficBreakdown {
		ships = append(ships, ship)
	}
	sort.Slice(ships, func(i, j int) bool {
		ci, cj := s.TrafficBreakdown[ships[i]], s.TrafficBreakdown[ships[j]]
		if ci != cj {
			return ci > cj
		}
		return ships[i] < ships[j]
	})

	fmt.Fprintln(w, "Ships seen in the last 24 hours")
	tw := newTable(w)
	for _, ship := range ships {
		fmt.Fprintf(tw, "  %s\t%s\n", ship, humanize.Comma(s.TrafficBreakdown[ship]))
	}
	tw.Flush()
}

func printDeaths(w io.Writer, s *models.System) {
	fmt.Fprintf(w, "%s deaths\n", s.Name)
	printStatistic(w, s.Deaths)
}

func printStatistic(w io.Writer, stat *models.Statistic) {
	if stat == nil {
		fmt.Fprintln(w, "  no data")
		return
	}
	fmt.Fprintf(w, "  Total: %s\n", humanize.Comma(stat.Total))
	fmt.Fprintf(w, "  Week:  %s\n", humanize.Comma(stat.Week))
	fmt.Fprintf(w, "  Day:   %s\n", humanize.Comma(stat.Day))
}

func printDumpSummary(w io.Writer, path string, systems []models.System) {
	var (
		withCoords, populated int
		population            int64
		newest                time.Time
	)
	for i := range systems {
		s := &systems[i]
		if s.Coords != nil {
			withCoords++
		}
		if s.Information != nil && s.Information.Population != nil && *s.Information.Population > 0 {
			populated++
			population += *s.Information.Population
		}
		if s.Date != nil && s.Date.After(newest) {
			newest = s.Date.Time
		}
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  Systems:          %s\n", humanize.Comma(int64(len(systems))))
	fmt.Fprintf(w, "  With coordinates: %s\n", humanize.Comma(int64(withCoords)))
	fmt.Fprintf(w, "  Populated:        %s (%s people)\n", humanize.Comma(int64(populated)), humanize.Comma(population))
	if !newest.IsZero() {
		fmt.Fprintf(w, "  Newest entry:     %s (%s)\n", newest.Format(time.DateTime), humanize.Time(newest))
	}
}
