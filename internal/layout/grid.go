package layout

// GridPlan is a contact-sheet grid.
type GridPlan struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Capacity is the number of cells in the grid.
func (g GridPlan) Capacity() int {
	return g.Cols * g.Rows
}

// gridBreakpoints lists grids from smallest to largest; the last entry is
// the hard cap.
var gridBreakpoints = []GridPlan{
	{Cols: 3, Rows: 2},
	{Cols: 4, Rows: 3},
	{Cols: 5, Rows: 4},
	{Cols: 6, Rows: 5},
	{Cols: 7, Rows: 6},
	{Cols: 8, Rows: 7},
}

// MaxGridCapacity is the largest number of photos one sheet can hold.
var MaxGridCapacity = gridBreakpoints[len(gridBreakpoints)-1].Capacity()

// PlanGrid picks the smallest grid that holds photoCount photos, capped at
// 8x7. The caller decides what to do with photos beyond the capacity.
func PlanGrid(photoCount int) GridPlan {
	for _, g := range gridBreakpoints {
		if photoCount <= g.Capacity() {
			return g
		}
	}
	return gridBreakpoints[len(gridBreakpoints)-1]
}
