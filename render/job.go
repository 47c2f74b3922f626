package render

import "fmt"

// Job is one band of raster rows to compute for a given viewport.
type Job struct {
	YStart int
	YCount int
	Scale  float64
	Offset complex128
}

func (j *Job) String() string {
	output := "{Job "
	output += fmt.Sprintf("YStart: %d ", j.YStart)
	output += fmt.Sprintf("YCount: %d ", j.YCount)
	output += fmt.Sprintf("Scale: %g ", j.Scale)
	output += fmt.Sprintf("Offset: %v}", j.Offset)
	return output
}

// Band is a contiguous range of raster rows assigned to one worker.
type Band struct {
	YStart int
	YCount int
}

// Partition splits the rows [0, height) into count contiguous bands that
// are pairwise disjoint and cover the range exactly. Remainder rows go to
// the last band.
func Partition(height int, count int) []Band {
	bands := make([]Band, count)
	rowsPerBand := height / count
	for i := 0; i < count; i++ {
		bands[i] = Band{
			YStart: i * rowsPerBand,
			YCount: rowsPerBand,
		}
	}
	bands[count-1].YCount = height - bands[count-1].YStart
	return bands
}
