package analysis

import (
	"sort"

	"github.com/sarchlab/lutra/datarecording"
)

// A Result is the classification of one lookup table.
type Result struct {
	// Name identifies the LUT in the netlist.
	Name string

	// Width is the number of select inputs.
	Width int

	// C1 and C2 report which cells can realize the table.
	C1 bool
	C2 bool
}

// A Report summarizes the classification of a netlist.
type Report struct {
	// Total is the number of classified LUTs.
	Total int

	// C1Matched and C2Matched count the LUTs each cell can realize.
	// Tables both cells realize count towards both and towards Both.
	C1Matched int
	C2Matched int
	Both      int

	// Unmatched counts the LUTs neither cell can realize.
	Unmatched int

	// ByWidth counts the LUTs per select input count.
	ByWidth map[int]int
}

// A ClassificationEntry is the per-LUT row written to the data recorder.
type ClassificationEntry struct {
	File  string
	Name  string
	Width int
	C1    bool
	C2    bool
}

// A ReportEntry is the per-netlist summary row written to the data recorder.
type ReportEntry struct {
	File      string
	Total     int
	C1Matched int
	C2Matched int
	Both      int
	Unmatched int
}

// A WidthCountEntry counts the LUTs of one width in one netlist.
type WidthCountEntry struct {
	File  string
	Width int
	Count int
}

// BuildReport aggregates per-LUT results.
func BuildReport(results []Result) Report {
	report := Report{
		Total:   len(results),
		ByWidth: make(map[int]int),
	}

	for _, r := range results {
		report.ByWidth[r.Width]++

		switch {
		case r.C1 && r.C2:
			report.Both++
			report.C1Matched++
			report.C2Matched++
		case r.C1:
			report.C1Matched++
		case r.C2:
			report.C2Matched++
		default:
			report.Unmatched++
		}
	}

	return report
}

// A Recorder persists classification runs. One recorder can collect any
// number of netlists into the same tables, with the File column telling
// the runs apart.
type Recorder struct {
	backend     datarecording.DataRecorder
	tablesReady bool
}

// NewRecorder wraps a data recorder for classification results.
func NewRecorder(backend datarecording.DataRecorder) *Recorder {
	return &Recorder{backend: backend}
}

// Record writes the per-LUT classifications and the aggregated report of
// one netlist, and returns the report.
func (r *Recorder) Record(file string, results []Result) Report {
	report := BuildReport(results)

	if !r.tablesReady {
		r.backend.CreateTable("lut_classifications", ClassificationEntry{})
		r.backend.CreateTable("lut_match_summary", ReportEntry{})
		r.backend.CreateTable("lut_width_counts", WidthCountEntry{})
		r.tablesReady = true
	}

	for _, res := range results {
		r.backend.InsertData("lut_classifications", ClassificationEntry{
			File:  file,
			Name:  res.Name,
			Width: res.Width,
			C1:    res.C1,
			C2:    res.C2,
		})
	}

	r.backend.InsertData("lut_match_summary", ReportEntry{
		File:      file,
		Total:     report.Total,
		C1Matched: report.C1Matched,
		C2Matched: report.C2Matched,
		Both:      report.Both,
		Unmatched: report.Unmatched,
	})

	widths := make([]int, 0, len(report.ByWidth))
	for width := range report.ByWidth {
		widths = append(widths, width)
	}
	sort.Ints(widths)

	for _, width := range widths {
		r.backend.InsertData("lut_width_counts", WidthCountEntry{
			File:  file,
			Width: width,
			Count: report.ByWidth[width],
		})
	}

	return report
}
